package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/models"
)

const notesTable = "notes"

var noteColumns = []string{"id", "author", "title", "body", "tag", "version", "created_at", "updated_at"}

// noteRepository is the SQL implementation of [NoteRepository]. Queries are
// built with squirrel using the placeholder format of the connection.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository returns a NoteRepository backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Author, note.Title, note.Body, note.Tag, note.Version, note.CreatedAt, note.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classifier.IsUniqueViolation(err) {
			return models.Note{}, ErrNoteAlreadyExists
		}
		r.logDBError(log, err, "noteRepository.CreateNote").Str("note_id", note.ID.String()).Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) GetNote(ctx context.Context, id uuid.UUID) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		r.logDBError(log, err, "noteRepository.GetNote").Str("note_id", id.String()).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *noteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	builder := r.db.builder.
		Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)
	if filter.Tag != "" {
		builder = builder.Where(sq.Eq{"tag": filter.Tag})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logDBError(log, err, "noteRepository.ListNotes").Msg("failed to list notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, filter.Limit)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note, expectedVersion int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Update(notesTable).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("tag", note.Tag).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"id": note.ID})
	if expectedVersion > 0 {
		builder = builder.Where(sq.Eq{"version": expectedVersion})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classifier.IsUniqueViolation(err) {
			return models.Note{}, ErrNoteAlreadyExists
		}
		r.logDBError(log, err, "noteRepository.UpdateNote").Str("note_id", note.ID.String()).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		// tell a missing note from a stale version
		if _, err = r.GetNote(ctx, note.ID); err != nil {
			return models.Note{}, err
		}
		return models.Note{}, ErrVersionConflict
	}

	return r.GetNote(ctx, note.ID)
}

func (r *noteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logDBError(log, err, "noteRepository.DeleteNote").Str("note_id", id.String()).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) logDBError(log *logger.Logger, err error, fn string) *zerolog.Event {
	return log.Err(err).
		Str("func", fn).
		Str("dialect", string(r.db.dialect)).
		Stringer("classification", r.db.classifier.Classify(err))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note    models.Note
		created time.Time
		updated time.Time
	)

	err := row.Scan(&note.ID, &note.Author, &note.Title, &note.Body, &note.Tag, &note.Version, &created, &updated)
	if err != nil {
		return models.Note{}, err
	}

	note.CreatedAt = created.UTC()
	note.UpdatedAt = updated.UTC()
	return note, nil
}
