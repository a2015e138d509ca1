package handler

import (
	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/handler/grpc"
	"github.com/CemWebDev/python-todo-backend/internal/handler/http"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/service"
)

// Handlers holds the transport front-ends of the todo API. HTTP serves the
// whole API; GRPC is an optional health-checking sidecar and is nil unless a
// gRPC address is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	logger.Info().
		Str("http_address", cfg.HTTPAddress).
		Bool("grpc_health", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
