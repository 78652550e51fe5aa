// Package utils provides helpers shared by the library and the demo
// service: typed context keys, HMAC hashing, JSON response writing, UUID
// generation, JWT issuing and verification and the HTTP client used by the
// demo client.
package utils

import "context"

// contextKey is a private type for context keys, so that values stored by
// this module never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the trace id assigned to a request.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by WithTraceID.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
