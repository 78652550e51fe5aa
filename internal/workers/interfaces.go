// Package workers runs the long-lived background loops of the notes server,
// such as the live feed hub, next to the HTTP server.
package workers

import "context"

// Worker runs until ctx is done or it fails.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to Worker.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
