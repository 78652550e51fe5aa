package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StructuredConfig
		wantErr error
	}{
		{
			name: "http address set",
			cfg: config.StructuredConfig{
				App:    config.App{TokenSignKey: "key"},
				Server: config.Server{HTTPAddress: "localhost:8080"},
			},
		},
		{
			name:    "no address",
			cfg:     config.StructuredConfig{},
			wantErr: errNoHandlersAreCreated,
		},
		{
			name: "broken cookie key",
			cfg: config.StructuredConfig{
				App:    config.App{CookieKey: "zz"},
				Server: config.Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: config.ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(&service.Services{}, &tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handlers)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, handlers.HTTP)
		})
	}
}
