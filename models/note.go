// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single text note stored by the demo service.
type Note struct {
	// ID is a time-ordered UUID assigned on creation.
	ID uuid.UUID `json:"id"`

	// Author is the subject of the token used to create the note.
	Author string `json:"author"`

	Title string `json:"title"`
	Body  string `json:"body"`

	// Tag is an optional label notes can be filtered by.
	Tag string `json:"tag,omitempty"`

	// Version is incremented on every update.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteFilter selects a page of notes.
type NoteFilter struct {
	Limit  uint64 `schema:"limit"`
	Offset uint64 `schema:"offset"`
	Tag    string `schema:"tag"`
}

// DefaultNotesLimit and MaxNotesLimit bound NoteFilter.Limit.
const (
	DefaultNotesLimit uint64 = 20
	MaxNotesLimit     uint64 = 100
)

// Normalize applies the default limit and caps it.
func (f NoteFilter) Normalize() NoteFilter {
	switch {
	case f.Limit == 0:
		f.Limit = DefaultNotesLimit
	case f.Limit > MaxNotesLimit:
		f.Limit = MaxNotesLimit
	}
	return f
}

// NoteEvent is pushed to live subscribers when a note changes.
type NoteEvent struct {
	Type string `json:"type"`
	Note Note   `json:"note"`
}

// Note event types.
const (
	NoteCreated = "created"
	NoteUpdated = "updated"
	NoteDeleted = "deleted"
)
