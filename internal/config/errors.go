package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAppConfigs covers missing token keys or a malformed cookie key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs covers a missing address or non-positive limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs covers client settings such as the server URL.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
