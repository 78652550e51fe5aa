// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-finchers/internal/utils"
)

// Output is a value which knows how to write itself as a response.
type Output interface {
	Respond(w http.ResponseWriter, r *http.Request) error
}

// Func adapts a function to the Output interface.
type Func func(w http.ResponseWriter, r *http.Request) error

// Respond calls f(w, r).
func (f Func) Respond(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// Respond writes v as the response:
//
//	Output           v.Respond(w, r)
//	nil, struct{}    204 No Content
//	string           200 text/plain; charset=utf-8
//	[]byte           200 application/octet-stream
//	error            the error response (see Error)
//	http.Handler     v.ServeHTTP(w, r)
//	anything else    200 JSON
//
// When Respond fails nothing has been written yet, unless the failure
// happened while the body was being sent.
func Respond(w http.ResponseWriter, r *http.Request, v any) error {
	switch v := v.(type) {
	case Output:
		return v.Respond(w, r)
	case nil, struct{}:
		w.WriteHeader(http.StatusNoContent)
		return nil
	case string:
		return Text(v).Respond(w, r)
	case []byte:
		return Bytes(v, "application/octet-stream").Respond(w, r)
	case error:
		return Error(w, r, v)
	case http.Handler:
		v.ServeHTTP(w, r)
		return nil
	default:
		return JSON(v).Respond(w, r)
	}
}

// JSON responds with v encoded as JSON and status 200.
func JSON(v any) Output {
	return Func(func(w http.ResponseWriter, _ *http.Request) error {
		return utils.WriteJSON(w, http.StatusOK, v)
	})
}

// Text responds with s as text/plain.
func Text(s string) Output {
	return Bytes([]byte(s), "text/plain; charset=utf-8")
}

// Bytes responds with b and the given content type.
func Bytes(b []byte, contentType string) Output {
	return Func(func(w http.ResponseWriter, _ *http.Request) error {
		h := w.Header()
		if h.Get("Content-Type") == "" {
			h.Set("Content-Type", contentType)
		}
		h.Set("Content-Length", strconv.Itoa(len(b)))
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(b)
		return err
	})
}
