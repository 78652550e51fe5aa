//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-finchers/models"
	"github.com/google/uuid"
)

// NoteRepository persists notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (models.Note, error)
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	// UpdateNote bumps the version of note.ID. A non-zero expectedVersion
	// must match the stored one.
	UpdateNote(ctx context.Context, note models.Note, expectedVersion int64) (models.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}
