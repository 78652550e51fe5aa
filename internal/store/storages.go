package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
)

// Storages bundles the repositories over one migrated connection.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to cfg.DB, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// Ping checks the underlying connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
