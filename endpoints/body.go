package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
)

// withBody builds an endpoint which always matches and hands the request
// body to read when its action runs.
func withBody[T any](read func(ctx context.Context, in *endpoint.Input, body io.Reader) (T, error)) endpoint.Endpoint[T] {
	return endpoint.Func[T](func(cx *endpoint.Context) (action.Action[T], error) {
		in := cx.Input()
		return func(ctx context.Context) (T, error) {
			var zero T

			body, err := in.TakeBody()
			if err != nil {
				return zero, err
			}
			defer body.Close()

			return read(ctx, in, body)
		}, nil
	})
}

func checkMediaType(in *endpoint.Input, accept func(string) bool) error {
	mt, _, err := in.MediaType()
	if err != nil {
		return err
	}
	if !accept(mt) {
		if mt == "" {
			mt = "none"
		}
		return httperr.UnsupportedMediaType(fmt.Errorf("%w: %s", ErrUnsupportedMedia, mt))
	}
	return nil
}

func isJSON(mt string) bool {
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// JSON decodes the body as JSON into T. The request must declare a JSON
// media type (415 otherwise); an empty or malformed body is a 400.
func JSON[T any]() endpoint.Endpoint[T] {
	return withBody(func(_ context.Context, in *endpoint.Input, body io.Reader) (T, error) {
		var v T
		if err := checkMediaType(in, isJSON); err != nil {
			return v, err
		}

		dec := json.NewDecoder(body)
		if err := dec.Decode(&v); err != nil {
			return v, bodyError("JSON", err)
		}
		if dec.More() {
			return v, httperr.BadRequest(errors.New("invalid JSON body: unexpected data after the value"))
		}
		return v, nil
	})
}

// bodyError classifies a failure to decode the body.
func bodyError(format string, err error) error {
	if errors.Is(err, io.EOF) {
		return httperr.BadRequest(ErrEmptyBody)
	}
	if httperr.Status(err) == http.StatusRequestEntityTooLarge {
		return err
	}
	return httperr.BadRequest(fmt.Errorf("invalid %s body: %w", format, err))
}

// Raw reads the whole body.
func Raw() endpoint.Endpoint[[]byte] {
	return withBody(func(_ context.Context, _ *endpoint.Input, body io.Reader) ([]byte, error) {
		return io.ReadAll(body)
	})
}

// Text reads the whole body as a UTF-8 string. A charset other than UTF-8
// is a 415; invalid UTF-8 is a 400.
func Text() endpoint.Endpoint[string] {
	return withBody(func(_ context.Context, in *endpoint.Input, body io.Reader) (string, error) {
		_, params, err := in.MediaType()
		if err != nil {
			return "", err
		}
		if cs := params["charset"]; cs != "" && !strings.EqualFold(cs, "utf-8") {
			return "", httperr.UnsupportedMediaType(fmt.Errorf("%w: charset %s", ErrUnsupportedMedia, cs))
		}

		data, err := io.ReadAll(body)
		if err != nil {
			return "", err
		}
		if !utf8.Valid(data) {
			return "", httperr.BadRequest(ErrInvalidUTF8)
		}
		return string(data), nil
	})
}

// Form decodes an application/x-www-form-urlencoded body into T using
// `schema` struct tags. Unknown keys are ignored.
func Form[T any]() endpoint.Endpoint[T] {
	return withBody(func(_ context.Context, in *endpoint.Input, body io.Reader) (T, error) {
		var v T
		if err := checkMediaType(in, func(mt string) bool { return mt == "application/x-www-form-urlencoded" }); err != nil {
			return v, err
		}

		data, err := io.ReadAll(body)
		if err != nil {
			return v, err
		}
		values, err := url.ParseQuery(string(data))
		if err != nil {
			return v, httperr.BadRequest(fmt.Errorf("invalid form body: %w", err))
		}
		if err = decodeValues(&v, values); err != nil {
			return v, httperr.BadRequest(fmt.Errorf("invalid form body: %w", err))
		}
		return v, nil
	})
}

// BodyReader hands out the body itself. The caller must close it.
func BodyReader() endpoint.Endpoint[io.ReadCloser] {
	return endpoint.Func[io.ReadCloser](func(cx *endpoint.Context) (action.Action[io.ReadCloser], error) {
		in := cx.Input()
		return func(context.Context) (io.ReadCloser, error) {
			return in.TakeBody()
		}, nil
	})
}
