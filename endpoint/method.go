// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-finchers/action"
)

// Method restricts e to requests using method. e is applied first, so a
// request whose path matches but whose method differs yields a
// MethodNotAllowed error instead of NotMatched.
func Method[T any](method string, e Endpoint[T]) Endpoint[T] {
	return methods(e, strings.ToUpper(method))
}

func methods[T any](e Endpoint[T], allowed ...string) Endpoint[T] {
	return Func[T](func(cx *Context) (action.Action[T], error) {
		a, err := e.Apply(cx)
		if err != nil {
			return nil, err
		}
		m := cx.Input().Method()
		for _, want := range allowed {
			if m == want {
				return a, nil
			}
		}
		return nil, MethodNotAllowed(allowed...)
	})
}

// Get matches GET and HEAD requests.
func Get[T any](e Endpoint[T]) Endpoint[T] {
	return methods(e, http.MethodGet, http.MethodHead)
}

// Head matches HEAD requests.
func Head[T any](e Endpoint[T]) Endpoint[T] { return methods(e, http.MethodHead) }

// Post matches POST requests.
func Post[T any](e Endpoint[T]) Endpoint[T] { return methods(e, http.MethodPost) }

// Put matches PUT requests.
func Put[T any](e Endpoint[T]) Endpoint[T] { return methods(e, http.MethodPut) }

// Patch matches PATCH requests.
func Patch[T any](e Endpoint[T]) Endpoint[T] { return methods(e, http.MethodPatch) }

// Delete matches DELETE requests.
func Delete[T any](e Endpoint[T]) Endpoint[T] { return methods(e, http.MethodDelete) }

// Options matches OPTIONS requests.
func Options[T any](e Endpoint[T]) Endpoint[T] { return methods(e, http.MethodOptions) }
