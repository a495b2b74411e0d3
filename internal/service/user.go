package service

import (
	"context"

	"github.com/deppfellow/user-service/internal/errs"
	"github.com/deppfellow/user-service/internal/model/user"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WelcomeEnqueuer schedules the welcome email for a new user.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name string) error
}

type UserService struct {
	server  *server.Server
	repo    *repository.UserRepository
	welcome WelcomeEnqueuer
	newID   func() string
}

func NewUserService(s *server.Server, repo *repository.UserRepository) *UserService {
	return &UserService{
		server: s,
		repo:   repo,
		newID:  func() string { return uuid.New().String() },
	}
}

func errUserNotFound() *errs.HTTPError {
	return errs.NewNotFoundError(user.MessageNotFound, false, nil)
}

// CreateUser assigns a fresh identifier and stores the user. Scheduling
// the welcome email is best effort and never fails the request.
func (s *UserService) CreateUser(ctx context.Context, payload *user.CreateUserPayload) (user.User, error) {
	created := s.repo.Create(payload.ToUser(s.newID()))

	logger := zerolog.Ctx(ctx)
	logger.Info().Str("user_id", created.ID).Msg("user created")

	if s.welcome != nil {
		if err := s.welcome.EnqueueWelcomeEmail(ctx, created.Email, created.Name); err != nil {
			logger.Warn().Err(err).Str("user_id", created.ID).Msg("failed to enqueue welcome email")
		}
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (user.User, error) {
	u, ok := s.repo.GetByID(id)
	if !ok {
		return user.User{}, errUserNotFound()
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) []user.User {
	return s.repo.List()
}

func (s *UserService) CountUsers(ctx context.Context) int {
	return s.repo.Count()
}

// UpdateUser checks existence before the email so that an unknown id is
// reported as not found whatever the body holds.
func (s *UserService) UpdateUser(ctx context.Context, payload *user.UpdateUserPayload) (user.User, error) {
	if _, ok := s.repo.GetByID(payload.ID); !ok {
		return user.User{}, errUserNotFound()
	}

	if err := validation.ValidateStruct(validation.ValidatorFunc(payload.ValidateEmail)); err != nil {
		return user.User{}, err
	}

	// The user may have been deleted since the check above.
	updated, ok := s.repo.Update(payload.ID, payload.Patch())
	if !ok {
		return user.User{}, errUserNotFound()
	}

	zerolog.Ctx(ctx).Info().Str("user_id", updated.ID).Msg("user updated")

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if !s.repo.Delete(id) {
		return errUserNotFound()
	}

	zerolog.Ctx(ctx).Info().Str("user_id", id).Msg("user deleted")

	return nil
}
