// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// StatusClientClosedRequest is the non-standard status used when the client
// went away before the response was produced.
const StatusClientClosedRequest = 499

// Error is an error which knows the HTTP status code it should be reported
// with.
type Error interface {
	error
	StatusCode() int
}

type statusError struct {
	status int
	err    error
}

// New wraps err with the given HTTP status code. A nil err is replaced with
// the standard status text.
func New(status int, err error) Error {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	return &statusError{status: status, err: err}
}

// Newf is like [New] but builds the cause with [fmt.Errorf].
func Newf(status int, format string, args ...any) Error {
	return New(status, fmt.Errorf(format, args...))
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) StatusCode() int {
	return e.status
}

func (e *statusError) Unwrap() error {
	return e.err
}

// BadRequest reports a malformed request (400).
func BadRequest(err error) Error { return New(http.StatusBadRequest, err) }

// Unauthorized reports missing or invalid credentials (401).
func Unauthorized(err error) Error { return New(http.StatusUnauthorized, err) }

// Forbidden reports a request the caller may not perform (403).
func Forbidden(err error) Error { return New(http.StatusForbidden, err) }

// NotFound reports a missing resource (404).
func NotFound(err error) Error { return New(http.StatusNotFound, err) }

// MethodNotAllowed reports an unsupported HTTP method (405).
func MethodNotAllowed(err error) Error { return New(http.StatusMethodNotAllowed, err) }

// Conflict reports a state conflict (409).
func Conflict(err error) Error { return New(http.StatusConflict, err) }

// PayloadTooLarge reports an oversized request body (413).
func PayloadTooLarge(err error) Error { return New(http.StatusRequestEntityTooLarge, err) }

// UnsupportedMediaType reports an unexpected Content-Type (415).
func UnsupportedMediaType(err error) Error { return New(http.StatusUnsupportedMediaType, err) }

// Internal reports a server-side failure (500).
func Internal(err error) Error { return New(http.StatusInternalServerError, err) }

// Status returns the HTTP status code err should be reported with.
//
// A nil error maps to 200.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var httpErr Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode()
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	return statusFromError(err)
}

// Message returns the text that may be exposed to the client for err.
// Server errors are reduced to their status text so internals do not leak.
func Message(err error) string {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	if status == StatusClientClosedRequest {
		return "client closed request"
	}
	return err.Error()
}

var errorStatusMap = map[error]int{
	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         StatusClientClosedRequest,
	strconv.ErrSyntax:        http.StatusBadRequest,
	strconv.ErrRange:         http.StatusBadRequest,
	http.ErrMissingFile:      http.StatusBadRequest,
	http.ErrNoCookie:         http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type headerError struct {
	err    Error
	header http.Header
}

func (e *headerError) Error() string {
	return e.err.Error()
}

func (e *headerError) StatusCode() int {
	return e.err.StatusCode()
}

func (e *headerError) Unwrap() error {
	return e.err
}

func (e *headerError) Header() http.Header {
	return e.header
}

// WithHeader attaches a response header to err, e.g. WWW-Authenticate on a
// 401. Headers of nested errors are kept.
func WithHeader(err Error, key, value string) Error {
	h := make(http.Header)
	h.Set(key, value)
	return &headerError{err: err, header: h}
}

// Header returns the response headers attached to err with [WithHeader].
func Header(err error) http.Header {
	out := make(http.Header)
	for err != nil {
		if he, ok := err.(interface{ Header() http.Header }); ok {
			for k, values := range he.Header() {
				if _, exists := out[k]; !exists {
					out[k] = values
				}
			}
		}
		err = errors.Unwrap(err)
	}
	return out
}
