package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle     = errors.New("title is required")
	ErrTitleTooLong   = errors.New("title is too long")
	ErrBodyTooLong    = errors.New("body is too long")
	ErrInvalidTag     = errors.New("tag must be lowercase letters, digits or dashes")
	ErrEmptySubject   = errors.New("subject is required")
	ErrInvalidSubject = errors.New("subject contains invalid characters")
	ErrEmptyAPIKey    = errors.New("api key is required")
)
