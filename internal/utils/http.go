package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ContentTypeJSON is the media type written by WriteJSON.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data and writes it with the given status code.
//
// Content-Type is set to ContentTypeJSON unless the caller already set one,
// and Content-Length is always set. Nothing is written when marshaling
// fails, so the caller can still send an error response.
//
// Example usage:
//
//	err := utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encoding response as JSON: %w", err)
	}

	h := w.Header()
	if h.Get("Content-Type") == "" {
		h.Set("Content-Type", ContentTypeJSON)
	}
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)

	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}
	return nil
}
