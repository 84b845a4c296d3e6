package service

import (
	"context"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/models"
)

// appInfoService reports the version served on /api/version. A version
// stamped into the binary at link time wins over the configured one.
type appInfoService struct {
	version string
	build   models.AppBuildInfo
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, build: build}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return s.build
}
