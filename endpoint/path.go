package endpoint

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/httperr"
)

var matched = action.Ready(struct{}{})

// Segment matches the next path segment against s. The segment is unescaped
// before comparison.
func Segment(s string) Endpoint[struct{}] {
	return Func[struct{}](func(cx *Context) (action.Action[struct{}], error) {
		if !matchSegment(cx, s) {
			return nil, NotMatched()
		}
		return matched, nil
	})
}

func matchSegment(cx *Context, want string) bool {
	raw, ok := cx.Next()
	if !ok {
		return false
	}
	if raw == want {
		return true
	}
	s, err := url.PathUnescape(raw)
	return err == nil && s == want
}

// EOS matches only when every path segment has been consumed.
func EOS() Endpoint[struct{}] {
	return Func[struct{}](func(cx *Context) (action.Action[struct{}], error) {
		if _, ok := cx.Peek(); ok {
			return nil, NotMatched()
		}
		return matched, nil
	})
}

type pathMatcher struct {
	segments []string
	all      bool
	eos      bool
}

// ParsePath builds an endpoint matching a sequence of literal segments.
//
//	"/api/v1"  matches the segments "api" and "v1"
//	"/api/"    additionally requires the path to end there
//	"/"        matches only the end of the path
//	"*"        consumes every remaining segment
//
// An empty pattern is rejected with [ErrEmptySegment].
func ParsePath(p string) (Endpoint[struct{}], error) {
	p = strings.TrimSpace(p)
	m := pathMatcher{}

	switch trimmed := strings.Trim(p, "/"); {
	case trimmed == "*":
		m.all = true
	case p == "":
		return nil, fmt.Errorf("%w: empty pattern", ErrEmptySegment)
	case trimmed == "":
		m.eos = true
	default:
		m.eos = strings.HasSuffix(p, "/")
		for _, s := range strings.Split(trimmed, "/") {
			if s = strings.TrimSpace(s); s == "" {
				return nil, fmt.Errorf("%w: %q", ErrEmptySegment, p)
			}
			m.segments = append(m.segments, s)
		}
	}

	return Func[struct{}](m.apply), nil
}

// Path is like [ParsePath] but panics on a malformed pattern.
func Path(p string) Endpoint[struct{}] {
	e, err := ParsePath(p)
	if err != nil {
		panic(err)
	}
	return e
}

func (m pathMatcher) apply(cx *Context) (action.Action[struct{}], error) {
	if m.all {
		cx.SkipAll()
		return matched, nil
	}
	for _, s := range m.segments {
		if !matchSegment(cx, s) {
			return nil, NotMatched()
		}
	}
	if m.eos {
		if _, ok := cx.Peek(); ok {
			return nil, NotMatched()
		}
	}
	return matched, nil
}

// Param parses the next path segment as T (see [ParseValue]). A missing
// segment does not match; a segment that cannot be parsed is a 400.
func Param[T any]() Endpoint[T] {
	return ParamWith(ParseValue[T])
}

// ParamWith is like [Param] with a custom parser.
func ParamWith[T any](parse func(string) (T, error)) Endpoint[T] {
	return Func[T](func(cx *Context) (action.Action[T], error) {
		raw, ok := cx.Next()
		if !ok {
			return nil, NotMatched()
		}
		s, err := url.PathUnescape(raw)
		if err != nil {
			return nil, httperr.BadRequest(fmt.Errorf("invalid path segment %q: %w", raw, err))
		}
		v, err := parse(s)
		if err != nil {
			return nil, httperr.BadRequest(fmt.Errorf("invalid path parameter %q: %w", s, err))
		}
		return action.Ready(v), nil
	})
}

// Remains parses the unescaped remaining path as T and consumes it.
func Remains[T any]() Endpoint[T] {
	return RemainsWith(ParseValue[T])
}

// RemainsWith is like [Remains] with a custom parser.
func RemainsWith[T any](parse func(string) (T, error)) Endpoint[T] {
	return Func[T](func(cx *Context) (action.Action[T], error) {
		rest, err := cx.RemainingPath()
		if err != nil {
			return nil, httperr.BadRequest(fmt.Errorf("invalid path: %w", err))
		}
		cx.SkipAll()
		v, err := parse(rest)
		if err != nil {
			return nil, httperr.BadRequest(fmt.Errorf("invalid path %q: %w", rest, err))
		}
		return action.Ready(v), nil
	})
}
