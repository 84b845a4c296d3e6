package handler

import (
	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/handler/http"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. rdb may be nil, which turns
// rate limiting off.
func NewHandlers(services *service.Services, cfg config.Server, rdb *redis.Client, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts := []http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}
	if rdb != nil {
		opts = append(opts, http.WithRateLimiter(http.NewRateLimiter(rdb, cfg.RateLimit)))
	}

	return &Handlers{HTTP: http.NewHandler(services, logger, opts...)}, nil
}
