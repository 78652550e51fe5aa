package service

import (
	"context"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/models"
)

type appInfoService struct {
	info models.VersionResponse
}

// NewAppInfoService reports the linker-injected build info. When the binary
// carries no version, the configured one is used instead.
func NewAppInfoService(build models.AppBuildInfo, cfg config.App) AppInfoService {
	info := build.Response()
	if info.Version == models.NotAvailable && cfg.Version != "" {
		info.Version = cfg.Version
	}

	return &appInfoService{info: info}
}

func (s *appInfoService) GetAppVersion(context.Context) models.VersionResponse {
	return s.info
}
