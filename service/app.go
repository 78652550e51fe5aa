package service

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/output"
	"github.com/rs/zerolog"
)

// App serves a composed endpoint over HTTP.
type App struct {
	apply   func(cx *endpoint.Context) (action.Action[any], error)
	opts    options
	handler http.Handler
}

// New creates an App serving e.
func New[T any](e endpoint.Endpoint[T], opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{
		apply: func(cx *endpoint.Context) (action.Action[any], error) {
			a, err := e.Apply(cx)
			if err != nil {
				return nil, err
			}
			return action.Map(a, func(v T) any { return v }), nil
		},
		opts: o,
	}

	var h http.Handler = http.HandlerFunc(app.serve)
	for i := len(o.middleware) - 1; i >= 0; i-- {
		h = o.middleware[i](h)
	}
	app.handler = h

	return app
}

// ServeHTTP implements http.Handler, including the configured middleware.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// Handler returns the app wrapped in its middleware.
func (a *App) Handler() http.Handler {
	return a.handler
}

type state int

const (
	stateStart state = iota
	stateInFlight
	stateDone
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateInFlight:
		return "in_flight"
	default:
		return "done"
	}
}

// call is the state of a single request.
type call struct {
	app   *App
	w     *responseWriter
	r     *http.Request
	input *endpoint.Input
	state state
	log   *zerolog.Logger

	finalized bool
}

func (a *App) serve(w http.ResponseWriter, r *http.Request) {
	input := endpoint.NewInputWithPath(r, routePath(r))
	input.SetMaxBodySize(a.opts.maxBodySize)

	c := &call{
		app:   a,
		w:     newResponseWriter(w),
		r:     r,
		input: input,
		state: stateStart,
		log:   a.logger(r.Context()),
	}
	c.run()
}

func (a *App) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.opts.logger
}

func (c *call) run() {
	defer func() {
		if p := recover(); p != nil {
			if p == http.ErrAbortHandler {
				panic(p)
			}
			c.log.Error().
				Str("state", c.state.String()).
				Str("stack", string(debug.Stack())).
				Msgf("panic while handling request: %v", p)
			c.fail(httperr.Internal(fmt.Errorf("%w: %v", action.ErrPanic, p)))
		}
	}()

	a, err := c.app.apply(endpoint.NewContext(c.input))
	if err != nil {
		c.state = stateDone
		c.fail(err)
		return
	}

	c.state = stateInFlight
	if c.app.opts.timeout > 0 {
		a = action.Timeout(a, c.app.opts.timeout)
	}
	v, err := action.Run(c.r.Context(), a)
	c.state = stateDone
	if err != nil {
		c.fail(err)
		return
	}

	c.respond(v)
}

func (c *call) finalize() {
	if c.finalized {
		return
	}
	c.finalized = true

	h := c.w.Header()
	c.input.Finalize(h)
	if c.app.opts.serverHeader != "" && h.Get("Server") == "" {
		h.Set("Server", c.app.opts.serverHeader)
	}
}

func (c *call) respond(v any) {
	c.finalize()

	start := time.Now()
	err := output.Respond(c.w, c.r, v)
	if err == nil {
		return
	}
	if c.w.Written() {
		c.log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("error after the response was sent")
		return
	}
	c.fail(err)
}

func (c *call) fail(err error) {
	if c.w.Written() {
		c.log.Warn().Err(err).Msg("request failed after the response was sent")
		return
	}

	status := httperr.Status(err)
	if status >= http.StatusInternalServerError {
		c.log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		c.log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	c.finalize()
	c.app.opts.errorHandler(c.w, c.r, err)
}
