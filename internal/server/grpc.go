package server

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"

	myGRPC "github.com/CemWebDev/python-todo-backend/internal/handler/grpc"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() (net.Listener, error) {
	return net.Listen("tcp", g.address)
}

func (g *grpcServer) serve(listener net.Listener) error {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Shutdown waits for in-flight RPCs until ctx expires, then stops hard.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
