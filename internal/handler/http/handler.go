package http

import (
	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	metrics *metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newMetrics(),
		logger:   logger,
	}
}
