package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/locker"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/models"
)

type Services struct {
	AuthService        AuthService
	WorkSessionService WorkSessionService
	EarningsService    EarningsService
	AnalyticsService   AnalyticsService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, lock locker.Locker, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	location, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("error loading time zone %q: %w", cfg.App.TimeZone, err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build)
	if err != nil {
		return nil, err
	}

	clock := Clock(time.Now)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, clock, logger),
		WorkSessionService: NewWorkSessionService(storages.WorkSessionRepository, lock, clock, location, logger),
		EarningsService:    NewEarningsService(storages.EarningsRepository, clock, logger),
		AnalyticsService:   NewAnalyticsService(storages.WorkSessionRepository, storages.EarningsRepository, clock, location, logger),
		AppInfoService:     appInfoService,
	}, nil
}
