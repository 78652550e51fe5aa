// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finchers/models"
)

func TestNoteValidator_NoteRequest(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		req     models.NoteRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.NoteRequest{Title: "groceries", Body: "milk", Tag: "home"}},
		{name: "valid without tag", req: models.NoteRequest{Title: "groceries"}},
		{name: "empty title", req: models.NoteRequest{Body: "milk"}, wantErr: ErrEmptyTitle},
		{name: "long title", req: models.NoteRequest{Title: strings.Repeat("é", MaxTitleLength+1)}, wantErr: ErrTitleTooLong},
		{name: "title at limit", req: models.NoteRequest{Title: strings.Repeat("é", MaxTitleLength)}},
		{name: "long body", req: models.NoteRequest{Title: "t", Body: strings.Repeat("x", MaxBodyLength+1)}, wantErr: ErrBodyTooLong},
		{name: "uppercase tag", req: models.NoteRequest{Title: "t", Tag: "Home"}, wantErr: ErrInvalidTag},
		{name: "leading dash tag", req: models.NoteRequest{Title: "t", Tag: "-home"}, wantErr: ErrInvalidTag},
		{name: "long tag", req: models.NoteRequest{Title: "t", Tag: strings.Repeat("a", MaxTagLength+1)}, wantErr: ErrInvalidTag},
		{name: "scoped to tag", req: models.NoteRequest{Tag: "ok-1"}, fields: []string{FieldTag}},
		{name: "unknown field", req: models.NoteRequest{Title: "t"}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointers follow the same rules
			assert.ErrorIs(t, v.Validate(context.Background(), &tt.req, tt.fields...), tt.wantErr)
		})
	}
}

func TestNoteValidator_Credentials(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Subject: "alice@example.com", APIKey: "k"}},
		{name: "empty subject", creds: models.Credentials{APIKey: "k"}, wantErr: ErrEmptySubject},
		{name: "bad subject", creds: models.Credentials{Subject: "al ice", APIKey: "k"}, wantErr: ErrInvalidSubject},
		{name: "empty key", creds: models.Credentials{Subject: "alice"}, wantErr: ErrEmptyAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	err := NewNoteValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
