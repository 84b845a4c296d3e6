package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	if h.rateLimiter != nil {
		router.Use(h.withRateLimit)
	}
	router.Use(withGZip)

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/sessions", func(r chi.Router) {
			r.Post("/", h.startSession)
			r.Get("/", h.listSessions)
			r.Get("/active", h.activeSession)
			r.Get("/current", h.currentSession)
			r.Get("/today", h.todaysSessions)
			r.Get("/journal", h.journal)
			r.Post("/{id}/pause", h.pauseSession)
			r.Post("/{id}/resume", h.resumeSession)
			r.Post("/{id}/complete", h.completeSession)
		})

		r.Post("/api/earnings", h.upsertEarnings)
		r.Get("/api/earnings", h.listEarnings)

		r.Get("/api/analytics/metrics", h.metrics)
		r.Get("/api/analytics/charts", h.charts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
