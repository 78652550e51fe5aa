package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-finchers/models"
)

// Field names accepted by NoteValidator.Validate.
const (
	FieldTitle   = "title"
	FieldBody    = "body"
	FieldTag     = "tag"
	FieldSubject = "subject"
	FieldAPIKey  = "api_key"
)

// Limits enforced on notes, counted in runes.
const (
	MaxTitleLength = 200
	MaxBodyLength  = 64 << 10
	MaxTagLength   = 32
)

var (
	tagPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	subjectPattern = regexp.MustCompile(`^[A-Za-z0-9._@-]{1,64}$`)
)

// NoteValidator validates note requests and token credentials.
type NoteValidator struct{}

// NewNoteValidator returns a NoteValidator as a Validator.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteRequest:
		return v.validateNoteRequest(value, fields...)
	case *models.NoteRequest:
		return v.validateNoteRequest(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteRequest(req models.NoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody, FieldTag}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(req.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldBody:
			if utf8.RuneCountInString(req.Body) > MaxBodyLength {
				return ErrBodyTooLong
			}
		case FieldTag:
			if req.Tag == "" {
				continue
			}
			if len(req.Tag) > MaxTagLength || !tagPattern.MatchString(req.Tag) {
				return ErrInvalidTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubject, FieldAPIKey}
	}

	for _, f := range fields {
		switch f {
		case FieldSubject:
			if c.Subject == "" {
				return ErrEmptySubject
			}
			if !subjectPattern.MatchString(c.Subject) {
				return ErrInvalidSubject
			}
		case FieldAPIKey:
			if c.APIKey == "" {
				return ErrEmptyAPIKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
