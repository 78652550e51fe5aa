// Package action provides Action, the deferred unit of work an endpoint
// produces once it has matched a request.
//
// An Action does nothing until it is invoked with a context. Matching a
// request is cheap and synchronous; everything that may block (reading the
// body, talking to a database) belongs inside the Action.
package action

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-finchers/httperr"
	"golang.org/x/sync/errgroup"
)

// ErrPanic is wrapped by the error returned from [Run] when the action panics.
var ErrPanic = errors.New("action panicked")

// Action is a deferred computation resolving to a value of type T.
type Action[T any] func(ctx context.Context) (T, error)

// Pair holds the results of two actions joined together.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Ready returns an action which immediately resolves to v.
func Ready[T any](v T) Action[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// Fail returns an action which immediately fails with err.
func Fail[T any](err error) Action[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// From converts a plain function into an action.
func From[T any](f func(ctx context.Context) (T, error)) Action[T] {
	return f
}

// Map transforms the result of a with f.
func Map[T, U any](a Action[T], f func(T) U) Action[U] {
	return func(ctx context.Context) (U, error) {
		v, err := a(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// AndThen runs f with the result of a. f is not called when a fails.
func AndThen[T, U any](a Action[T], f func(context.Context, T) (U, error)) Action[U] {
	return func(ctx context.Context) (U, error) {
		v, err := a(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(ctx, v)
	}
}

// Recover gives f a chance to turn the error of a into a value.
func Recover[T any](a Action[T], f func(context.Context, error) (T, error)) Action[T] {
	return func(ctx context.Context) (T, error) {
		v, err := a(ctx)
		if err == nil {
			return v, nil
		}
		return f(ctx, err)
	}
}

// MapErr rewrites the error returned by a.
func MapErr[T any](a Action[T], f func(error) error) Action[T] {
	return func(ctx context.Context) (T, error) {
		v, err := a(ctx)
		if err != nil {
			return v, f(err)
		}
		return v, nil
	}
}

// Join runs a and b concurrently. The first failure cancels the other action
// and is returned; no partial pair is ever produced.
func Join[A, B any](a Action[A], b Action[B]) Action[Pair[A, B]] {
	return func(ctx context.Context) (Pair[A, B], error) {
		var pair Pair[A, B]

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			v, err := a(gctx)
			pair.First = v
			return err
		})
		g.Go(func() error {
			v, err := b(gctx)
			pair.Second = v
			return err
		})

		if err := g.Wait(); err != nil {
			return Pair[A, B]{}, err
		}
		return pair, nil
	}
}

// All runs every action concurrently and collects the results in input order.
func All[T any](actions []Action[T]) Action[[]T] {
	return func(ctx context.Context) ([]T, error) {
		results := make([]T, len(actions))

		g, gctx := errgroup.WithContext(ctx)
		for i, a := range actions {
			g.Go(func() error {
				v, err := a(gctx)
				results[i] = v
				return err
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}
}

// Timeout bounds the execution of a by d. The action observes the deadline
// through its context; if it ignores it, Timeout still returns once d elapsed
// but a keeps running in the background. Actions which read the request
// must stop when ctx is done, since the request is gone after the response.
func Timeout[T any](a Action[T], d time.Duration) Action[T] {
	if d <= 0 {
		return a
	}
	return func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		future := Spawn(ctx, a)
		v, err := future.Await(ctx)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			var zero T
			return zero, httperr.New(http.StatusGatewayTimeout, fmt.Errorf("action timed out after %s: %w", d, err))
		}
		return v, err
	}
}

// Run invokes a and converts a panic into an error wrapping [ErrPanic].
func Run[T any](ctx context.Context, a Action[T]) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			v = zero
			err = httperr.Internal(fmt.Errorf("%w: %v\n%s", ErrPanic, p, debug.Stack()))
		}
	}()
	return a(ctx)
}
