package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/store"
	"github.com/MKhiriev/go-finchers/internal/utils"
	"github.com/MKhiriev/go-finchers/internal/validators"
	"github.com/MKhiriev/go-finchers/models"
)

type noteService struct {
	repository store.NoteRepository
	feed       NoteFeed
	validator  validators.Validator
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewNoteService wires the notes use cases. Every successful change is
// published to feed.
func NewNoteService(repository store.NoteRepository, feed NoteFeed, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		repository: repository,
		feed:       feed,
		validator:  validator,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *noteService) timestamp() time.Time {
	// microseconds survive both postgres and sqlite round trips
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *noteService) CreateNote(ctx context.Context, author string, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid note request")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.timestamp()
	note := models.Note{
		ID:        s.ids.Generate(),
		Author:    author,
		Title:     req.Title,
		Body:      req.Body,
		Tag:       req.Tag,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("author", author).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	s.feed.Publish(models.NoteEvent{Type: models.NoteCreated, Note: created})
	return created, nil
}

func (s *noteService) GetNote(ctx context.Context, id uuid.UUID) (models.Note, error) {
	note, err := s.repository.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.repository.ListNotes(ctx, filter.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

func (s *noteService) UpdateNote(ctx context.Context, author string, id uuid.UUID, req models.NoteRequest, version int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid note request")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := s.owned(ctx, author, id)
	if err != nil {
		return models.Note{}, err
	}

	note.Title = req.Title
	note.Body = req.Body
	note.Tag = req.Tag
	note.UpdatedAt = s.timestamp()

	updated, err := s.repository.UpdateNote(ctx, note, version)
	if err != nil {
		log.Err(err).Str("note_id", id.String()).Int64("version", version).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	s.feed.Publish(models.NoteEvent{Type: models.NoteUpdated, Note: updated})
	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, author string, id uuid.UUID) error {
	note, err := s.owned(ctx, author, id)
	if err != nil {
		return err
	}

	if err = s.repository.DeleteNote(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("note_id", id.String()).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	s.feed.Publish(models.NoteEvent{Type: models.NoteDeleted, Note: note})
	return nil
}

// owned loads a note and checks that author created it.
func (s *noteService) owned(ctx context.Context, author string, id uuid.UUID) (models.Note, error) {
	note, err := s.repository.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	if note.Author != author {
		logger.FromContext(ctx).Warn().
			Str("note_id", id.String()).
			Str("author", note.Author).
			Str("subject", author).
			Msg("attempt to change a foreign note")
		return models.Note{}, ErrNotNoteAuthor
	}

	return note, nil
}
