// Package service holds the notes demo use cases behind the HTTP layer.
package service

import (
	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/store"
	"github.com/MKhiriev/go-finchers/internal/validators"
	"github.com/MKhiriev/go-finchers/models"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
	Feed           *Feed
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewNoteValidator()
	feed := NewFeed(DefaultFeedBuffer, logger)

	return &Services{
		AuthService:    NewAuthService(cfg.App, validator, logger),
		NoteService:    NewNoteService(storages.NoteRepository, feed, validator, logger),
		AppInfoService: NewAppInfoService(build, cfg.App),
		Feed:           feed,
	}
}
