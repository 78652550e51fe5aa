// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps validator failures.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongAPIKey is returned when credentials do not carry the
	// configured API key.
	ErrWrongAPIKey = errors.New("wrong api key")

	// ErrNotNoteAuthor is returned when a subject changes a note it did not
	// create.
	ErrNotNoteAuthor = errors.New("note belongs to a different author")

	// ErrFeedClosed is returned by Subscribe after the feed stopped.
	ErrFeedClosed = errors.New("note feed is closed")
)
