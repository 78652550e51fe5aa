package service

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Mount attaches app to router below pattern. The app then matches its
// endpoints against the part of the path following pattern.
func Mount(router chi.Router, pattern string, app *App) {
	router.Mount(pattern, app)
}

// routePath returns the escaped path the endpoints are matched against.
// When the request was routed by chi, the segments consumed by the router
// are dropped.
func routePath(r *http.Request) string {
	escaped := r.URL.EscapedPath()

	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePath == "" {
		return escaped
	}

	full := r.URL.RawPath
	if full == "" {
		full = r.URL.Path
	}
	skip := len(segments(full)) - len(segments(rctx.RoutePath))
	parts := segments(escaped)
	if skip <= 0 || skip > len(parts) {
		return escaped
	}
	return "/" + strings.Join(parts[skip:], "/")
}

func segments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
