package server

import "context"

// Server defines the lifecycle of the application server.
type Server interface {
	// RunServer serves until ctx is done or a stop signal arrives, then
	// shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for the active ones
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
