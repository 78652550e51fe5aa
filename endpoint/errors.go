// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-finchers/httperr"
)

type applyErrorKind int

const (
	kindNotMatched applyErrorKind = iota
	kindMethodNotAllowed
)

// ApplyError reports why an endpoint did not match the request.
type ApplyError struct {
	kind    applyErrorKind
	allowed []string
}

// Sentinels for use with [errors.Is].
var (
	ErrNotMatched       = &ApplyError{kind: kindNotMatched}
	ErrMethodNotAllowed = &ApplyError{kind: kindMethodNotAllowed}
)

// Errors returned by [Input] and the path syntax.
var (
	ErrBodyTaken        = errors.New("request body has already been taken")
	ErrEmptySegment     = errors.New("path contains an empty segment")
	ErrInvalidCookieKey = errors.New("invalid cookie key length")
)

// NotMatched returns the error of an endpoint that does not apply to the
// request (404).
func NotMatched() *ApplyError {
	return &ApplyError{kind: kindNotMatched}
}

// MethodNotAllowed returns the error of an endpoint whose path matched but
// whose method did not (405). allowed lists the methods that would match.
func MethodNotAllowed(allowed ...string) *ApplyError {
	return &ApplyError{kind: kindMethodNotAllowed, allowed: normalizeMethods(allowed)}
}

func (e *ApplyError) Error() string {
	switch e.kind {
	case kindMethodNotAllowed:
		if len(e.allowed) == 0 {
			return "method not allowed"
		}
		return "method not allowed (allowed: " + strings.Join(e.allowed, ", ") + ")"
	default:
		return "no route matched"
	}
}

// StatusCode implements [httperr.Error].
func (e *ApplyError) StatusCode() int {
	if e.kind == kindMethodNotAllowed {
		return http.StatusMethodNotAllowed
	}
	return http.StatusNotFound
}

// Allowed returns the methods reported by a MethodNotAllowed error.
func (e *ApplyError) Allowed() []string {
	return slices.Clone(e.allowed)
}

// Is matches ApplyErrors of the same kind, so that errors.Is(err, ErrNotMatched)
// works for every not-matched error.
func (e *ApplyError) Is(target error) bool {
	t, ok := target.(*ApplyError)
	return ok && t.kind == e.kind
}

var _ httperr.Error = (*ApplyError)(nil)

// mergeErrors combines the failures of two alternatives. Errors other than
// ApplyError win over MethodNotAllowed, which wins over NotMatched.
func mergeErrors(e1, e2 error) error {
	var a1, a2 *ApplyError
	ok1 := errors.As(e1, &a1)
	ok2 := errors.As(e2, &a2)

	switch {
	case !ok1:
		return e1
	case !ok2:
		return e2
	case a1.kind == kindMethodNotAllowed && a2.kind == kindMethodNotAllowed:
		return MethodNotAllowed(append(a1.Allowed(), a2.allowed...)...)
	case a2.kind == kindMethodNotAllowed:
		return a2
	default:
		return a1
	}
}

func normalizeMethods(methods []string) []string {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(m)
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	slices.Sort(out)
	return out
}
