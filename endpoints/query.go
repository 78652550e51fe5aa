package endpoints

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/gorilla/schema"
)

var valuesDecoder = newValuesDecoder()

func newValuesDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func decodeValues(dst any, values url.Values) error {
	return valuesDecoder.Decode(dst, values)
}

// Query decodes the whole query string into T using `schema` struct tags.
// Unknown keys are ignored; values that do not convert are a 400.
func Query[T any]() endpoint.Endpoint[T] {
	return endpoint.Func[T](func(cx *endpoint.Context) (action.Action[T], error) {
		r := cx.Request()
		return func(context.Context) (T, error) {
			var v T
			if err := decodeValues(&v, r.URL.Query()); err != nil {
				return v, httperr.BadRequest(fmt.Errorf("invalid query: %w", err))
			}
			return v, nil
		}, nil
	})
}

// QueryParam parses the query parameter name as T (see
// [endpoint.ParseValue]). A missing parameter is a 400.
func QueryParam[T any](name string) endpoint.Endpoint[T] {
	return endpoint.AndThen(QueryOptional[T](name), func(_ context.Context, v *T) (T, error) {
		if v == nil {
			var zero T
			return zero, httperr.BadRequest(fmt.Errorf("%w: %s", ErrMissingQueryParam, name))
		}
		return *v, nil
	})
}

// QueryOptional is like [QueryParam] but yields nil when the parameter is
// missing.
func QueryOptional[T any](name string) endpoint.Endpoint[*T] {
	return endpoint.Func[*T](func(cx *endpoint.Context) (action.Action[*T], error) {
		r := cx.Request()
		return func(context.Context) (*T, error) {
			values, ok := r.URL.Query()[name]
			if !ok || len(values) == 0 {
				return nil, nil
			}
			v, err := endpoint.ParseValue[T](values[0])
			if err != nil {
				return nil, httperr.BadRequest(fmt.Errorf("invalid query parameter %s: %w", name, err))
			}
			return &v, nil
		}, nil
	})
}
