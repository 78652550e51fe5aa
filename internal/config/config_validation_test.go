package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "sign",
			TokenIssuer:   "issuer",
			TokenDuration: time.Hour,
			APIKey:        "key",
		},
		Storage: Storage{DB: DB{DSN: "notes.db"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Client: Client{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: time.Second,
			Subject:        "demo",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "valid cookie key", mutate: func(c *StructuredConfig) { c.App.CookieKey = strings.Repeat("ab", 32) }},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing api key", mutate: func(c *StructuredConfig) { c.App.APIKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "short cookie key", mutate: func(c *StructuredConfig) { c.App.CookieKey = "abcd" }, wantErr: ErrInvalidAppConfigs},
		{name: "non hex cookie key", mutate: func(c *StructuredConfig) { c.App.CookieKey = "zz" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "unlimited body size", mutate: func(c *StructuredConfig) { c.Server.MaxBodySize = -1 }},
		{name: "negative request timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateClient(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "server sign key not needed", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }},
		{name: "relative url", mutate: func(c *StructuredConfig) { c.Client.ServerURL = "/api" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Client.RequestTimeout = 0 }, wantErr: true},
		{name: "missing api key", mutate: func(c *StructuredConfig) { c.App.APIKey = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validateClient()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClientConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCookieKeyBytes(t *testing.T) {
	key, err := App{}.CookieKeyBytes()
	require.NoError(t, err)
	assert.Nil(t, key)

	key, err = App{CookieKey: strings.Repeat("0a", 32)}.CookieKeyBytes()
	require.NoError(t, err)
	assert.Len(t, key, 32)
}
