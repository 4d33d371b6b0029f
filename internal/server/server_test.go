package server

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	// NewHandlers only stores the services pointer, nil is safe for
	// construction-time tests.
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "localhost:0",
		RequestTimeout: 5 * time.Second,
	}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 3 * time.Second,
	}

	hs := newHTTPServer(nil, cfg, logger.Nop())

	assert.Equal(t, "localhost:8080", hs.server.Addr)
	assert.Equal(t, 3*time.Second, hs.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, hs.server.WriteTimeout)
}
