// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Match them with errors.Is.
var (
	// ErrNoteNotFound is returned when no note has the requested id.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyExists is returned when the author already owns a note
	// with the same title.
	ErrNoteAlreadyExists = errors.New("note with this title already exists")

	// ErrVersionConflict is returned when an update names a version that is
	// no longer current.
	ErrVersionConflict = errors.New("note version conflict occurred")

	// ErrUnsupportedDSN is returned when no driver matches the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level failures wrapped by repository methods.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan note row")
	ErrScanningRows     = errors.New("failed to scan note rows")
)
