package endpoint

import (
	"net/http"
	"net/url"
	"strings"
)

// Context is what an endpoint sees while it is applied: the shared [Input]
// and a cursor over the path segments not consumed yet.
type Context struct {
	input *Input
	pos   int
}

// NewContext returns a Context positioned at the first path segment.
func NewContext(in *Input) *Context {
	return &Context{input: in}
}

// Input returns the request input.
func (cx *Context) Input() *Input {
	return cx.input
}

// Request is a shortcut for cx.Input().Request().
func (cx *Context) Request() *http.Request {
	return cx.input.request
}

// Next consumes and returns the next raw (still escaped) path segment.
func (cx *Context) Next() (string, bool) {
	if cx.pos >= len(cx.input.segments) {
		return "", false
	}
	s := cx.input.segments[cx.pos]
	cx.pos++
	return s, true
}

// Peek returns the next raw segment without consuming it.
func (cx *Context) Peek() (string, bool) {
	if cx.pos >= len(cx.input.segments) {
		return "", false
	}
	return cx.input.segments[cx.pos], true
}

// Remaining returns the raw segments not consumed yet.
func (cx *Context) Remaining() []string {
	return cx.input.segments[cx.pos:]
}

// RemainingPath returns the unescaped rest of the path, without a leading
// slash.
func (cx *Context) RemainingPath() (string, error) {
	return url.PathUnescape(strings.Join(cx.Remaining(), "/"))
}

// SkipAll consumes every remaining segment.
func (cx *Context) SkipAll() {
	cx.pos = len(cx.input.segments)
}

// Position returns the number of consumed segments.
func (cx *Context) Position() int {
	return cx.pos
}

// Clone returns a Context sharing the Input with an independent cursor.
func (cx *Context) Clone() *Context {
	return &Context{input: cx.input, pos: cx.pos}
}

func (cx *Context) moveTo(other *Context) {
	cx.pos = other.pos
}
