package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/user-service/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	logger := zerolog.Nop()

	s, err := New(cfg, &logger, nil)
	require.NoError(t, err)
	return s
}

func TestNewWithoutRedis(t *testing.T) {
	s := newTestServer(t)

	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)
	assert.NotNil(t, s.Config)
}

func TestStartRequiresSetup(t *testing.T) {
	s := newTestServer(t)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestStartAndShutdown(t *testing.T) {
	s := newTestServer(t)
	s.Config.Server.Port = "0"
	s.SetupHTTPServer(http.NewServeMux())

	assert.Equal(t, 30*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
