package service

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/output"
	"github.com/rs/zerolog"
)

// ErrorHandler writes the response for a failed request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type options struct {
	logger       zerolog.Logger
	timeout      time.Duration
	errorHandler ErrorHandler
	maxBodySize  int64
	serverHeader string
	middleware   []Middleware
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		errorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			_ = output.Error(w, r, err)
		},
		maxBodySize:  endpoint.DefaultMaxBodySize,
		serverHeader: DefaultServerHeader,
	}
}

// Option configures an App.
type Option func(*options)

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout bounds the execution of the action. Expiry is reported as
// 504 Gateway Timeout. Zero disables the bound.
//
// The response is written as soon as the bound expires. Actions must return
// when their ctx is done: one that ignores it outlives the request and must
// not touch the request body or headers afterwards.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithErrorHandler replaces the default JSON error response.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithMaxBodySize sets the request body limit. A non-positive n disables
// it.
func WithMaxBodySize(n int64) Option {
	return func(o *options) { o.maxBodySize = n }
}

// WithServerHeader sets the Server header value. An empty value disables
// the header.
func WithServerHeader(s string) Option {
	return func(o *options) { o.serverHeader = s }
}

// WithMiddleware wraps the app with mw. The first middleware is the
// outermost one.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) { o.middleware = append(o.middleware, mw...) }
}
