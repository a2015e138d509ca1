package service

import (
	"context"
	"time"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

// healthPingTimeout bounds a single store ping made for a health check.
const healthPingTimeout = 2 * time.Second

type appInfoService struct {
	appVersion string
	pinger     Pinger

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService. pinger may be nil, in which
// case the service always reports itself healthy.
func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.CheckHealth").Msg("store is unreachable")
		return err
	}

	return nil
}
