// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the notes demo.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds keys, token parameters and the version string.
	App App `envPrefix:"APP_"`

	// Storage holds the notes database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener and request handling settings.
	Server Server `envPrefix:"SERVER_"`

	// Client holds settings used only by cmd/client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional JSON file merged on top of env and flags.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional arguments left after the flags.
	Args []string
}

// App holds application-level secrets and token settings.
type App struct {
	// TokenSignKey signs and verifies HS256 access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// APIKey is exchanged for a token on POST /api/token.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// CookieKey is a hex encoded 32 byte key for private session cookies.
	// Env: APP_COOKIE_KEY
	CookieKey string `env:"COOKIE_KEY"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by GET /api/version when no build version is set.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the notes database connection.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// go to pgx,
	// anything else is treated as a SQLite path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request action.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodySize limits request bodies in bytes. A negative value disables
	// the limit; zero keeps the default.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`

	// Gzip enables response compression.
	// Env: SERVER_GZIP
	Gzip bool `env:"GZIP"`

	// StaticDir is served under /static when set.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Client holds the demo client settings.
type Client struct {
	// ServerURL is the base URL of the notes server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Subject is the token subject the client asks for.
	// Env: CLIENT_SUBJECT
	Subject string `env:"SUBJECT"`
}

// CookieKeyBytes decodes App.CookieKey. An empty key yields nil.
func (a App) CookieKeyBytes() ([]byte, error) {
	if a.CookieKey == "" {
		return nil, nil
	}

	key, err := hex.DecodeString(a.CookieKey)
	if err != nil {
		return nil, fmt.Errorf("%w: cookie key is not hex: %w", ErrInvalidAppConfigs, err)
	}
	if len(key) != cookieKeySize {
		return nil, fmt.Errorf("%w: cookie key must be %d bytes, got %d", ErrInvalidAppConfigs, cookieKeySize, len(key))
	}

	return key, nil
}

// GetStructuredConfig loads configuration for the server. Sources are merged
// in this order, later non-zero values winning:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON file (path taken from 2 or 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetClientConfig loads the same sources and validates only what the demo
// client needs.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
