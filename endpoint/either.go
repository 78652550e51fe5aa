package endpoint

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-finchers/output"
)

// Either is the value produced by [Or]: the value of whichever side matched.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// NewLeft wraps a value of the left alternative.
func NewLeft[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// NewRight wraps a value of the right alternative.
func NewRight[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Left returns the left value and whether it is the one held.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether it is the one held.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// IsLeft reports whether the left alternative matched.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Value returns the held value.
func (e Either[L, R]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Respond writes the held value as the response.
func (e Either[L, R]) Respond(w http.ResponseWriter, r *http.Request) error {
	return output.Respond(w, r, e.Value())
}

// MarshalJSON encodes the held value.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Value())
}

// Fold collapses e into a single value.
func Fold[L, R, T any](e Either[L, R], left func(L) T, right func(R) T) T {
	if e.isRight {
		return right(e.right)
	}
	return left(e.left)
}
