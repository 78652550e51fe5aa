package endpointtest

import (
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/service"
)

// DefaultHost is the Host of requests whose target has none.
const DefaultHost = "localhost"

// DefaultHeaders returns the headers added to every request which does not
// set them itself.
func DefaultHeaders() http.Header {
	return http.Header{
		"User-Agent": {service.DefaultServerHeader},
	}
}

// Runner applies an endpoint to synthetic requests.
type Runner[T any] struct {
	endpoint endpoint.Endpoint[T]
	app      *service.App

	// Headers are added to every request which does not set them. It
	// starts as DefaultHeaders().
	Headers http.Header
}

// NewRunner creates a Runner for e. opts configure the service used by
// Respond.
func NewRunner[T any](e endpoint.Endpoint[T], opts ...service.Option) *Runner[T] {
	return &Runner[T]{
		endpoint: e,
		app:      service.New(e, opts...),
		Headers:  DefaultHeaders(),
	}
}

// Apply applies the endpoint to req and runs the resulting action. A
// failure to match is returned as the error.
func (r *Runner[T]) Apply(req *Request) (T, error) {
	return r.ApplyRequest(req.build(r.Headers))
}

// ApplyRequest is like Apply for a prepared *http.Request.
func (r *Runner[T]) ApplyRequest(req *http.Request) (T, error) {
	a, err := r.endpoint.Apply(endpoint.NewContext(endpoint.NewInput(req)))
	if err != nil {
		var zero T
		return zero, err
	}
	return action.Run(req.Context(), a)
}

// Respond serves req through the full service, middleware included.
func (r *Runner[T]) Respond(req *Request) *httptest.ResponseRecorder {
	return r.RespondRequest(req.build(r.Headers))
}

// RespondRequest is like Respond for a prepared *http.Request.
func (r *Runner[T]) RespondRequest(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.app.ServeHTTP(rec, req)
	return rec
}
