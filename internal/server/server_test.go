package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/handler"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/mock"
	"github.com/CemWebDev/python-todo-backend/internal/service"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().CheckHealth(gomock.Any()).Return(nil).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_DefaultsShutdownTimeout(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_AddressInUse_ReturnsError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())

	assert.Error(t, err)
}
