package action

import "context"

// Future is the handle of an action running in the background.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Spawn starts a in a new goroutine and returns immediately.
func Spawn[T any](ctx context.Context, a Action[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = Run(ctx, a)
	}()
	return f
}

// Await blocks until the action finished or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the action finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
