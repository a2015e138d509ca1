package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [Run] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// Run starts serving requests and blocks until ctx is done or a stop
	// signal arrives, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
