package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/user-service/internal/config"
	"github.com/deppfellow/user-service/internal/errs"
	"github.com/deppfellow/user-service/internal/model/user"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	calls []string
	err   error
}

func (f *fakeEnqueuer) EnqueueWelcomeEmail(ctx context.Context, to, name string) error {
	f.calls = append(f.calls, to+"/"+name)
	return f.err
}

func setupTestService(t *testing.T) *Services {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{Config: config.Default(), Logger: &logger}

	services, err := NewServices(s, repository.NewRepositories())
	require.NoError(t, err)
	return services
}

func requireStatus(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCreateUserAssignsUniqueIDs(t *testing.T) {
	svc := setupTestService(t).User
	ctx := context.Background()

	seen := map[string]bool{}
	for range 20 {
		created, err := svc.CreateUser(ctx, &user.CreateUserPayload{Name: "Alice", Email: "alice@example.com", Age: 28})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}

	assert.Len(t, svc.ListUsers(ctx), 20)
	assert.Equal(t, 20, svc.CountUsers(ctx))
}

func TestCreateUserWithoutJobs(t *testing.T) {
	services := setupTestService(t)

	assert.Nil(t, services.Job)
	assert.Nil(t, services.User.welcome)
}

func TestCreateUserEnqueuesWelcome(t *testing.T) {
	svc := setupTestService(t).User
	enqueuer := &fakeEnqueuer{err: errors.New("redis down")}
	svc.welcome = enqueuer

	created, err := svc.CreateUser(context.Background(), &user.CreateUserPayload{Name: "Bob", Email: "bob@example.com", Age: 35})

	require.NoError(t, err, "enqueue failures do not fail the create")
	assert.Equal(t, "Bob", created.Name)
	assert.Equal(t, []string{"bob@example.com/Bob"}, enqueuer.calls)
}

func TestGetUser(t *testing.T) {
	svc := setupTestService(t).User
	ctx := context.Background()

	svc.newID = func() string { return "fixed-id" }
	created, err := svc.CreateUser(ctx, &user.CreateUserPayload{Name: "Alice", Email: "alice@example.com", Age: 28})
	require.NoError(t, err)

	fetched, err := svc.GetUser(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	_, err = svc.GetUser(ctx, "missing")
	requireStatus(t, err, http.StatusNotFound, "User not found.")
}

func TestUpdateUser(t *testing.T) {
	svc := setupTestService(t).User
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &user.CreateUserPayload{Name: "Alice", Email: "alice@example.com", Age: 28})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, &user.UpdateUserPayload{ID: created.ID, Age: 29})
	require.NoError(t, err)
	assert.Equal(t, user.User{ID: created.ID, Name: "Alice", Email: "alice@example.com", Age: 29}, updated)

	_, err = svc.UpdateUser(ctx, &user.UpdateUserPayload{ID: created.ID, Email: "broken@"})
	requireStatus(t, err, http.StatusBadRequest, "Invalid email format.")

	_, err = svc.UpdateUser(ctx, &user.UpdateUserPayload{ID: "missing", Email: "broken@"})
	requireStatus(t, err, http.StatusNotFound, "User not found.")

	stored, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.Email, "rejected update leaves the record alone")
}

func TestDeleteUser(t *testing.T) {
	svc := setupTestService(t).User
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &user.CreateUserPayload{Name: "Alice", Email: "alice@example.com", Age: 28})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))
	requireStatus(t, svc.DeleteUser(ctx, created.ID), http.StatusNotFound, "User not found.")
	assert.Empty(t, svc.ListUsers(ctx))
}
