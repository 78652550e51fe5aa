package adapter

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finchers/internal/config"
	httpHandler "github.com/MKhiriev/go-finchers/internal/handler/http"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/service"
	"github.com/MKhiriev/go-finchers/internal/store"
	"github.com/MKhiriev/go-finchers/models"
)

// startServer runs the full notes stack on a temporary SQLite database.
func startServer(t *testing.T) (*httptest.Server, *service.Services) {
	t.Helper()

	ctx := context.Background()
	log := logger.Nop()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "e2e-sign-key",
			TokenIssuer:   "go-finchers-e2e",
			TokenDuration: time.Hour,
			APIKey:        "e2e-api-key",
		},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")}},
		Server:  config.Server{MaxBodySize: 1 << 20, RequestTimeout: 5 * time.Second},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, cfg, models.NewAppBuildInfo("v-e2e", "", ""), log)

	feedCtx, stopFeed := context.WithCancel(ctx)
	go func() { _ = services.Feed.Run(feedCtx) }()
	t.Cleanup(stopFeed)

	h, err := httpHandler.NewHandler(services, cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, services
}

func TestEndToEnd(t *testing.T) {
	srv, services := startServer(t)
	ctx := context.Background()

	alice := newTestAdapter(t, srv.URL)
	bob := newTestAdapter(t, srv.URL)

	version, err := alice.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v-e2e", version.Version)

	_, err = alice.Login(ctx, models.Credentials{Subject: "alice", APIKey: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = alice.Login(ctx, models.Credentials{Subject: "alice", APIKey: "e2e-api-key"})
	require.NoError(t, err)
	_, err = bob.Login(ctx, models.Credentials{Subject: "bob", APIKey: "e2e-api-key"})
	require.NoError(t, err)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	events := make(chan models.NoteEvent, 8)
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- bob.Watch(watchCtx, func(e models.NoteEvent) { events <- e })
	}()
	require.Eventually(t, func() bool { return services.Feed.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	note, err := alice.CreateNote(ctx, models.NoteRequest{Title: "groceries", Body: "milk", Tag: "home"})
	require.NoError(t, err)
	assert.Equal(t, "alice", note.Author)
	assert.Equal(t, int64(1), note.Version)

	select {
	case e := <-events:
		assert.Equal(t, models.NoteCreated, e.Type)
		assert.Equal(t, note.ID, e.Note.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no live event received")
	}

	_, err = alice.CreateNote(ctx, models.NoteRequest{Title: "groceries"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = bob.UpdateNote(ctx, note.ID, models.NoteRequest{Title: "mine now"}, 0)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := alice.UpdateNote(ctx, note.ID, models.NoteRequest{Title: "errands", Tag: "home"}, note.Version)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = alice.UpdateNote(ctx, note.ID, models.NoteRequest{Title: "stale"}, note.Version)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := bob.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "errands", got.Title)

	notes, err := bob.ListNotes(ctx, models.NoteFilter{Tag: "home"})
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, alice.DeleteNote(ctx, note.ID))
	_, err = bob.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stopWatch()
	select {
	case err = <-watchDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
