// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the notes demo API.
//
// [ServerAdapter] hides the transport from the client application. Error
// responses are mapped to the sentinel errors of this package so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for
// 401).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finchers/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the notes server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	Version(ctx context.Context) (models.VersionResponse, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (models.Note, error)
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	// UpdateNote sends version as If-Match unless it is 0.
	UpdateNote(ctx context.Context, id uuid.UUID, req models.NoteRequest, version int64) (models.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error

	// Watch streams note events until ctx is done or the server closes the
	// feed.
	Watch(ctx context.Context, onEvent func(models.NoteEvent)) error
}
