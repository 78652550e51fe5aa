//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finchers/models"
)

// AuthService exchanges credentials for access tokens.
type AuthService interface {
	CreateToken(ctx context.Context, credentials models.Credentials) (models.Token, error)
}

// NoteService is the notes use-case layer. Mutating calls take the token
// subject as author.
type NoteService interface {
	CreateNote(ctx context.Context, author string, req models.NoteRequest) (models.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (models.Note, error)
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	// UpdateNote replaces title, body and tag. A non-zero version must
	// match the stored one.
	UpdateNote(ctx context.Context, author string, id uuid.UUID, req models.NoteRequest, version int64) (models.Note, error)
	DeleteNote(ctx context.Context, author string, id uuid.UUID) error
}

// NoteFeed fans note events out to live subscribers.
type NoteFeed interface {
	Publish(event models.NoteEvent)
	// Subscribe returns a channel of events. It is closed when ctx is done,
	// the feed stops or the subscriber falls behind.
	Subscribe(ctx context.Context) (<-chan models.NoteEvent, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
