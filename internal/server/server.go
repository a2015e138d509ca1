package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/handler"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

const (
	// healthRefreshInterval is how often the gRPC health status is re-checked.
	healthRefreshInterval = 15 * time.Second

	defaultShutdownTimeout = 5 * time.Second
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	handlers   *handler.Handlers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		handlers:        handlers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// Run binds every configured listener, serves until ctx is cancelled or
// SIGTERM, SIGINT or SIGQUIT arrives, then shuts all servers down within
// the configured shutdown timeout.
func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	type servable struct {
		name  string
		serve func(net.Listener) error
		ln    net.Listener
	}

	var toServe []servable
	if s.httpServer != nil {
		ln, err := s.httpServer.listen()
		if err != nil {
			return fmt.Errorf("listening HTTP on %s: %w", s.httpServer.server.Addr, err)
		}
		toServe = append(toServe, servable{name: "HTTP", serve: s.httpServer.serve, ln: ln})
	}
	if s.gRPCServer != nil {
		ln, err := s.gRPCServer.listen()
		if err != nil {
			for _, srv := range toServe {
				_ = srv.ln.Close()
			}
			return fmt.Errorf("listening gRPC on %s: %w", s.gRPCServer.address, err)
		}
		toServe = append(toServe, servable{name: "gRPC", serve: s.gRPCServer.serve, ln: ln})
		go s.gRPCServer.handler.WatchHealth(ctx, healthRefreshInterval)
	}

	serveErrs := make(chan error, len(toServe))
	for _, srv := range toServe {
		s.logger.Info().Msgf("Launching %s server", srv.name)
		go func() {
			if err := srv.serve(srv.ln); err != nil {
				serveErrs <- fmt.Errorf("%s server: %w", srv.name, err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErrs:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	// finish HTTP server
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
		}
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		if err := s.gRPCServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("gRPC shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}
