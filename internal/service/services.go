package service

import (
	"github.com/deppfellow/user-service/internal/lib/job"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
)

type Services struct {
	User *UserService
	Job  *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	userService := NewUserService(s, repos.User)

	// A nil *JobService must not end up inside the interface.
	if s.Job != nil {
		userService.welcome = s.Job
	}

	return &Services{
		User: userService,
		Job:  s.Job,
	}, nil
}
