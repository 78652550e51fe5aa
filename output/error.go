// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/internal/utils"
)

// ErrorBody is the JSON body of an error response.
type ErrorBody struct {
	Error string `json:"error"`
}

type allowedMethods interface {
	Allowed() []string
}

// Error writes err as a JSON error response. The status comes from
// [httperr.Status] and the message from [httperr.Message]. A 405 response
// lists the allowed methods in the Allow header.
func Error(w http.ResponseWriter, _ *http.Request, err error) error {
	status := httperr.Status(err)

	h := w.Header()
	for k, values := range httperr.Header(err) {
		h[k] = values
	}

	var am allowedMethods
	if status == http.StatusMethodNotAllowed && errors.As(err, &am) {
		if allowed := am.Allowed(); len(allowed) > 0 {
			h.Set("Allow", strings.Join(allowed, ", "))
		}
	}

	h.Del("Content-Length")
	h.Set("Content-Type", utils.ContentTypeJSON)
	h.Set("X-Content-Type-Options", "nosniff")
	return utils.WriteJSON(w, status, ErrorBody{Error: httperr.Message(err)})
}
