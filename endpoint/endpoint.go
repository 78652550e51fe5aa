package endpoint

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-finchers/action"
)

// Endpoint checks an incoming request and, when it matches, returns the
// action producing a value of type T.
type Endpoint[T any] interface {
	Apply(cx *Context) (action.Action[T], error)
}

// Func adapts an ordinary function to the Endpoint interface.
type Func[T any] func(cx *Context) (action.Action[T], error)

// Apply calls f(cx).
func (f Func[T]) Apply(cx *Context) (action.Action[T], error) {
	return f(cx)
}

// Wrapper converts an endpoint into another one.
type Wrapper[T, U any] func(Endpoint[T]) Endpoint[U]

// Wrap applies w to e.
func Wrap[T, U any](e Endpoint[T], w Wrapper[T, U]) Endpoint[U] {
	return w(e)
}

// Value returns an endpoint which always matches and yields v.
func Value[T any](v T) Endpoint[T] {
	return Func[T](func(*Context) (action.Action[T], error) {
		return action.Ready(v), nil
	})
}

// Unit returns an endpoint which always matches and yields nothing.
func Unit() Endpoint[struct{}] {
	return Value(struct{}{})
}

// Lazy returns an endpoint which always matches and runs f when its action
// is executed.
func Lazy[T any](f func(ctx context.Context) (T, error)) Endpoint[T] {
	return Func[T](func(*Context) (action.Action[T], error) {
		return action.From(f), nil
	})
}

// Reject returns an endpoint which never matches and fails with err.
func Reject[T any](err error) Endpoint[T] {
	return Func[T](func(*Context) (action.Action[T], error) {
		return nil, err
	})
}

// Map transforms the value of e with f.
func Map[T, U any](e Endpoint[T], f func(T) U) Endpoint[U] {
	return Func[U](func(cx *Context) (action.Action[U], error) {
		a, err := e.Apply(cx)
		if err != nil {
			return nil, err
		}
		return action.Map(a, f), nil
	})
}

// AndThen runs f, which may fail, with the value of e.
func AndThen[T, U any](e Endpoint[T], f func(context.Context, T) (U, error)) Endpoint[U] {
	return Func[U](func(cx *Context) (action.Action[U], error) {
		a, err := e.Apply(cx)
		if err != nil {
			return nil, err
		}
		return action.AndThen(a, f), nil
	})
}

// Recover lets f handle every failure of e: both a failure to match and an
// error returned by its action.
func Recover[T any](e Endpoint[T], f func(context.Context, error) (T, error)) Endpoint[T] {
	return Func[T](func(cx *Context) (action.Action[T], error) {
		c := cx.Clone()
		a, err := e.Apply(c)
		if err != nil {
			return func(ctx context.Context) (T, error) {
				return f(ctx, err)
			}, nil
		}
		cx.moveTo(c)
		return action.Recover(a, f), nil
	})
}

// MapErr rewrites the errors of e, including match failures.
func MapErr[T any](e Endpoint[T], f func(error) error) Endpoint[T] {
	return Func[T](func(cx *Context) (action.Action[T], error) {
		a, err := e.Apply(cx)
		if err != nil {
			return nil, f(err)
		}
		return action.MapErr(a, f), nil
	})
}

// Optional turns a not-matched e into a nil value. Other failures are kept.
func Optional[T any](e Endpoint[T]) Endpoint[*T] {
	return Func[*T](func(cx *Context) (action.Action[*T], error) {
		c := cx.Clone()
		a, err := e.Apply(c)
		if errors.Is(err, ErrNotMatched) {
			return action.Ready[*T](nil), nil
		}
		if err != nil {
			return nil, err
		}
		cx.moveTo(c)
		return action.Map(a, func(v T) *T { return &v }), nil
	})
}
