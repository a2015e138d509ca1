// Package server runs the HTTP API listener and the optional gRPC health
// listener until the process is signalled, then drains both.
package server
