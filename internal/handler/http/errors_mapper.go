package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/internal/service"
	"github.com/MKhiriev/go-finchers/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongAPIKey:         http.StatusUnauthorized,
	service.ErrNotNoteAuthor:       http.StatusForbidden,
	service.ErrFeedClosed:          http.StatusServiceUnavailable,

	store.ErrNoteNotFound:      http.StatusNotFound,
	store.ErrNoteAlreadyExists: http.StatusConflict,
	store.ErrVersionConflict:   http.StatusConflict,
}

// mapError attaches a status to service and store errors. Errors already
// carrying one are returned unchanged; unknown errors stay 500.
func mapError(err error) error {
	var httpErr httperr.Error
	if errors.As(err, &httpErr) {
		return err
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return httperr.New(status, err)
		}
	}
	return err
}
