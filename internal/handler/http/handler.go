package http

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/service"
)

type Handler struct {
	services *service.Services

	tokenSignKey []byte
	tokenIssuer  string
	cookieKey    []byte
	server       config.Server

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Without a configured cookie key a
// random one is generated, so sessions do not survive a restart.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	cookieKey, err := cfg.App.CookieKeyBytes()
	if err != nil {
		return nil, err
	}
	if cookieKey == nil {
		cookieKey = make([]byte, chacha20poly1305.KeySize)
		rand.Read(cookieKey)
		logger.Warn().Msg("no cookie key configured, using a random one")
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: []byte(cfg.App.TokenSignKey),
		tokenIssuer:  cfg.App.TokenIssuer,
		cookieKey:    cookieKey,
		server:       cfg.Server,
		logger:       logger,
	}, nil
}
