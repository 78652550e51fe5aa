// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidIfMatch is returned for an If-Match header that is neither "*"
// nor a note version.
var ErrInvalidIfMatch = errors.New("invalid `If-Match` header")

// ErrUpgradeRequired is returned for a plain request to the live feed.
var ErrUpgradeRequired = errors.New("websocket upgrade required")
