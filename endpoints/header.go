package endpoints

import (
	"context"
	"fmt"
	"net/textproto"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
)

// Header parses the request header name as T. A missing header is a 400.
func Header[T any](name string) endpoint.Endpoint[T] {
	return endpoint.AndThen(HeaderOptional[T](name), func(_ context.Context, v *T) (T, error) {
		if v == nil {
			var zero T
			return zero, httperr.BadRequest(fmt.Errorf("%w: %s", ErrMissingHeader, name))
		}
		return *v, nil
	})
}

// HeaderOptional is like [Header] but yields nil when the header is absent.
func HeaderOptional[T any](name string) endpoint.Endpoint[*T] {
	key := textproto.CanonicalMIMEHeaderKey(name)
	return endpoint.Func[*T](func(cx *endpoint.Context) (action.Action[*T], error) {
		values := cx.Input().Header()[key]
		if len(values) == 0 {
			return action.Ready[*T](nil), nil
		}
		raw := values[0]
		return func(context.Context) (*T, error) {
			v, err := endpoint.ParseValue[T](raw)
			if err != nil {
				return nil, httperr.BadRequest(fmt.Errorf("invalid header %s: %w", key, err))
			}
			return &v, nil
		}, nil
	})
}

// HeaderEquals matches only requests whose header name has exactly value.
func HeaderEquals(name, value string) endpoint.Endpoint[struct{}] {
	key := textproto.CanonicalMIMEHeaderKey(name)
	return endpoint.Func[struct{}](func(cx *endpoint.Context) (action.Action[struct{}], error) {
		for _, v := range cx.Input().Header()[key] {
			if v == value {
				return action.Ready(struct{}{}), nil
			}
		}
		return nil, endpoint.NotMatched()
	})
}
