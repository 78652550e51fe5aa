// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finchers/internal/adapter"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/mock"
	"github.com/MKhiriev/go-finchers/models"
)

var credentials = models.Credentials{Subject: "alice", APIKey: "secret"}

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	out := new(bytes.Buffer)

	app, err := NewApp(serverAdapter, credentials, out, logger.Nop())
	require.NoError(t, err)

	return app, serverAdapter, out
}

func expectLogin(serverAdapter *mock.MockServerAdapter) {
	serverAdapter.EXPECT().Token().Return("")
	serverAdapter.EXPECT().Login(gomock.Any(), credentials).
		Return(models.Token{SignedString: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)
}

func TestNewApp_NilAdapter(t *testing.T) {
	_, err := NewApp(nil, credentials, new(bytes.Buffer), logger.Nop())
	assert.ErrorIs(t, err, ErrNilAdapter)
}

func TestApp_Version(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().Version(gomock.Any()).
		Return(models.VersionResponse{Version: "1.2.3", Date: "today", Commit: "abc"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "Server version: 1.2.3")
	assert.Contains(t, out.String(), "Server commit: abc")
}

func TestApp_List(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		args     []string
		filter   models.NoteFilter
		notes    []models.Note
		contains string
	}{
		{
			name:     "all notes",
			args:     []string{"list"},
			notes:    []models.Note{{ID: id, Title: "groceries", Version: 2}},
			contains: "groceries",
		},
		{
			name:     "by tag",
			args:     []string{"list", "work"},
			filter:   models.NoteFilter{Tag: "work"},
			notes:    []models.Note{{ID: id, Title: "standup", Tag: "work", Version: 1}},
			contains: "work",
		},
		{
			name:     "empty",
			args:     []string{"list"},
			contains: "no notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, serverAdapter, out := newTestApp(t)
			expectLogin(serverAdapter)
			serverAdapter.EXPECT().ListNotes(gomock.Any(), tt.filter).Return(tt.notes, nil)

			require.NoError(t, app.Run(context.Background(), tt.args))
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestApp_SkipsLoginWithToken(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)
	serverAdapter.EXPECT().Token().Return("tok")
	serverAdapter.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{}).Return(nil, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
}

func TestApp_LoginFailure(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)
	serverAdapter.EXPECT().Token().Return("")
	serverAdapter.EXPECT().Login(gomock.Any(), credentials).Return(models.Token{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"list"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_Create(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		args    []string
		req     models.NoteRequest
		wantErr error
	}{
		{name: "title only", args: []string{"create", "t"}, req: models.NoteRequest{Title: "t"}},
		{name: "title body tag", args: []string{"create", "t", "b", "x"}, req: models.NoteRequest{Title: "t", Body: "b", Tag: "x"}},
		{name: "missing title", args: []string{"create"}, wantErr: ErrUsage},
		{name: "too many", args: []string{"create", "a", "b", "c", "d"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, serverAdapter, out := newTestApp(t)
			expectLogin(serverAdapter)
			if tt.wantErr == nil {
				serverAdapter.EXPECT().CreateNote(gomock.Any(), tt.req).
					Return(models.Note{ID: id, Title: tt.req.Title, Version: 1}, nil)
			}

			err := app.Run(context.Background(), tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "created "+id.String())
		})
	}
}

func TestApp_Get(t *testing.T) {
	id := uuid.New()
	app, serverAdapter, out := newTestApp(t)
	expectLogin(serverAdapter)
	serverAdapter.EXPECT().GetNote(gomock.Any(), id).
		Return(models.Note{ID: id, Title: "plan", Body: "step one", Version: 3}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", id.String()}))
	assert.Contains(t, out.String(), "plan")
	assert.Contains(t, out.String(), "step one")
}

func TestApp_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		app, serverAdapter, out := newTestApp(t)
		expectLogin(serverAdapter)
		serverAdapter.EXPECT().DeleteNote(gomock.Any(), id).Return(nil)

		require.NoError(t, app.Run(context.Background(), []string{"delete", id.String()}))
		assert.Contains(t, out.String(), "deleted "+id.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		app, serverAdapter, _ := newTestApp(t)
		expectLogin(serverAdapter)
		serverAdapter.EXPECT().DeleteNote(gomock.Any(), id).Return(adapter.ErrForbidden)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"delete", id.String()}), adapter.ErrForbidden)
	})

	t.Run("bad id", func(t *testing.T) {
		app, serverAdapter, _ := newTestApp(t)
		expectLogin(serverAdapter)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"delete", "nope"}), ErrUsage)
	})
}

func TestApp_Watch(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	note := models.Note{ID: uuid.New(), Title: "live", Author: "bob"}
	serverAdapter.EXPECT().Watch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, onEvent func(models.NoteEvent)) error {
			onEvent(models.NoteEvent{Type: models.NoteCreated, Note: note})
			return nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"watch"}))
	assert.Contains(t, out.String(), "created")
	assert.Contains(t, out.String(), `"live" by bob`)
}

func TestApp_WatchError(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)
	boom := errors.New("handshake failed")
	serverAdapter.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(boom)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"watch"}), boom)
}

func TestApp_DemoIsDefault(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	id := uuid.New()

	gomock.InOrder(
		serverAdapter.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "dev"}, nil),
		serverAdapter.EXPECT().Token().Return(""),
		serverAdapter.EXPECT().Login(gomock.Any(), credentials).Return(models.Token{SignedString: "tok"}, nil),
		serverAdapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.NoteRequest) (models.Note, error) {
				assert.Equal(t, "hello from alice", req.Title)
				assert.Equal(t, demoTag, req.Tag)
				return models.Note{ID: id, Title: req.Title, Tag: req.Tag, Version: 1}, nil
			}),
		serverAdapter.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{Tag: demoTag}).
			Return([]models.Note{{ID: id, Title: "hello from alice", Tag: demoTag, Version: 1}}, nil),
	)

	require.NoError(t, app.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "created "+id.String())
	assert.Contains(t, out.String(), "hello from alice")
}

func TestApp_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"frobnicate"}), ErrUnknownCommand)
}
