package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id in the request
// context with [utils.WithUserID]. The request logger gains a user_id field.
//
// Requests without a usable token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID)
		})
		ctx = l.WithContext(utils.WithUserID(ctx, token.UserID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated user of the request.
func userID(r *http.Request) (string, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return id, nil
}
