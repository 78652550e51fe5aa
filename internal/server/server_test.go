package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/handler"
	httpHandler "github.com/MKhiriev/go-finchers/internal/handler/http"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/service"
	"github.com/MKhiriev/go-finchers/internal/workers"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers(t *testing.T, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()

	h, err := httpHandler.NewHandler(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return &handler.Handlers{HTTP: h}
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := &config.StructuredConfig{}

	_, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: freeAddress(t)}}

	stopped := make(chan struct{})
	background := workers.WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	})

	srv, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop(), background)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/unknown", cfg.Server.HTTPAddress))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	<-stopped
}

func TestRunServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: l.Addr().String()}}
	srv, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())

	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr))
}
