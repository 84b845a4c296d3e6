package http

import (
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the timeout.
	requestTimeout time.Duration
	// rateLimiter is nil when rate limiting is off.
	rateLimiter *RateLimiter

	logger *logger.Logger
}

// Option customises a Handler.
type Option func(*Handler)

func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

// WithRateLimiter enables the per-client rate limit. A nil limiter is ignored.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(h *Handler) {
		h.rateLimiter = limiter
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Dur("request_timeout", h.requestTimeout).
		Bool("rate_limit", h.rateLimiter != nil).
		Msg("http handler created")
	return h
}
