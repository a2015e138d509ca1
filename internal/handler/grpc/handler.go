// Package grpc exposes the standard gRPC health protocol
// (grpc.health.v1.Health) for the todo server. The reported status follows
// the reachability of the store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/service"
)

// ServiceName is the health-check service name reported next to the
// server-wide ("") status.
const ServiceName = "todo.v1.TodoAPI"

// Handler is the root gRPC transport handler.
//
// It owns the health server and keeps its status in line with
// [service.AppInfoService.CheckHealth]. A handler instance is created once at
// startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Until the first refresh every service reports NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// RefreshHealth checks the store once and publishes the outcome.
func (h *Handler) RefreshHealth(ctx context.Context) {
	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.RefreshHealth").Msg("store unhealthy")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// WatchHealth refreshes the status every interval until ctx is done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	h.RefreshHealth(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.RefreshHealth(ctx)
		}
	}
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
