package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
)

// errorStatuses is checked in order; the first kind err wraps decides the
// status.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
	{ErrTooManyRequests, http.StatusTooManyRequests},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a JSON error body. Messages of
// internal errors are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	event := logger.FromRequest(r).Warn()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
