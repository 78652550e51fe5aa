package handler

import (
	"fmt"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/handler/http"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	h, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating http handler: %w", err)
	}

	return &Handlers{HTTP: h}, nil
}
