// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoints

import "errors"

var (
	ErrEmptyBody          = errors.New("request body is empty")
	ErrInvalidUTF8        = errors.New("request body is not valid UTF-8")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrMissingQueryParam  = errors.New("missing query parameter")
	ErrMissingHeader      = errors.New("missing header")
	ErrMissingCookie      = errors.New("missing cookie")
	ErrMissingCredentials = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid token")
)
