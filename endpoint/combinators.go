package endpoint

import (
	"context"

	"github.com/MKhiriev/go-finchers/action"
)

// And matches e1 and then e2 against the rest of the path. Their actions run
// concurrently and the values are returned as a pair.
func And[A, B any](e1 Endpoint[A], e2 Endpoint[B]) Endpoint[action.Pair[A, B]] {
	return Func[action.Pair[A, B]](func(cx *Context) (action.Action[action.Pair[A, B]], error) {
		a1, err := e1.Apply(cx)
		if err != nil {
			return nil, err
		}
		a2, err := e2.Apply(cx)
		if err != nil {
			return nil, err
		}
		return action.Join(a1, a2), nil
	})
}

// Then is like [And] but runs the action of e2 only after the action of e1
// succeeded. An error of e1 is returned without running e2.
func Then[A, B any](e1 Endpoint[A], e2 Endpoint[B]) Endpoint[action.Pair[A, B]] {
	return Func[action.Pair[A, B]](func(cx *Context) (action.Action[action.Pair[A, B]], error) {
		a1, err := e1.Apply(cx)
		if err != nil {
			return nil, err
		}
		a2, err := e2.Apply(cx)
		if err != nil {
			return nil, err
		}
		return action.AndThen(a1, func(ctx context.Context, first A) (action.Pair[A, B], error) {
			second, err := a2(ctx)
			if err != nil {
				return action.Pair[A, B]{}, err
			}
			return action.Pair[A, B]{First: first, Second: second}, nil
		}), nil
	})
}

// With is like [And] but keeps only the value of e2.
func With[A, B any](e1 Endpoint[A], e2 Endpoint[B]) Endpoint[B] {
	return Map(And(e1, e2), func(p action.Pair[A, B]) B { return p.Second })
}

// Left is like [And] but keeps only the value of e1.
func Left[A, B any](e1 Endpoint[A], e2 Endpoint[B]) Endpoint[A] {
	return Map(And(e1, e2), func(p action.Pair[A, B]) A { return p.First })
}

// Or applies e1 and e2 from the same position and keeps the one which
// consumed more path segments; e1 wins a tie. When both fail their errors
// are merged: custom errors first, then MethodNotAllowed, then NotMatched.
func Or[L, R any](e1 Endpoint[L], e2 Endpoint[R]) Endpoint[Either[L, R]] {
	return Func[Either[L, R]](func(cx *Context) (action.Action[Either[L, R]], error) {
		c1 := cx.Clone()
		a1, err1 := e1.Apply(c1)
		c2 := cx.Clone()
		a2, err2 := e2.Apply(c2)

		left := func() action.Action[Either[L, R]] {
			cx.moveTo(c1)
			return action.Map(a1, NewLeft[L, R])
		}
		right := func() action.Action[Either[L, R]] {
			cx.moveTo(c2)
			return action.Map(a2, NewRight[L, R])
		}

		switch {
		case err1 == nil && err2 == nil:
			if c2.Position() > c1.Position() {
				return right(), nil
			}
			return left(), nil
		case err1 == nil:
			return left(), nil
		case err2 == nil:
			return right(), nil
		default:
			return nil, mergeErrors(err1, err2)
		}
	})
}

// OrStrict tries e1 first and only applies e2 when e1 does not match.
func OrStrict[T any](e1, e2 Endpoint[T]) Endpoint[T] {
	return Func[T](func(cx *Context) (action.Action[T], error) {
		c1 := cx.Clone()
		a1, err1 := e1.Apply(c1)
		if err1 == nil {
			cx.moveTo(c1)
			return a1, nil
		}

		c2 := cx.Clone()
		a2, err2 := e2.Apply(c2)
		if err2 == nil {
			cx.moveTo(c2)
			return a2, nil
		}
		return nil, mergeErrors(err1, err2)
	})
}

// Any is [OrStrict] over a list of endpoints.
func Any[T any](es ...Endpoint[T]) Endpoint[T] {
	if len(es) == 0 {
		return Reject[T](NotMatched())
	}
	e := es[0]
	for _, next := range es[1:] {
		e = OrStrict(e, next)
	}
	return e
}

// All matches every endpoint in order and collects their values.
func All[T any](es ...Endpoint[T]) Endpoint[[]T] {
	return Func[[]T](func(cx *Context) (action.Action[[]T], error) {
		actions := make([]action.Action[T], 0, len(es))
		for _, e := range es {
			a, err := e.Apply(cx)
			if err != nil {
				return nil, err
			}
			actions = append(actions, a)
		}
		return action.All(actions), nil
	})
}
