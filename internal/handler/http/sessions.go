package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.StartSessionRequest
	if err = utils.ReadJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.services.WorkSessionService.StartSession(r.Context(), id, request.TaskName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Session: &session}, http.StatusCreated)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dateRange, err := parseDateRange(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sessions, err := h.services.WorkSessionService.ListSessions(r.Context(), id, dateRange)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionsResponse{Sessions: nonNil(sessions)}, http.StatusOK)
}

func (h *Handler) activeSession(w http.ResponseWriter, r *http.Request) {
	h.optionalSession(w, r, h.services.WorkSessionService.GetActiveSession)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	h.optionalSession(w, r, h.services.WorkSessionService.GetCurrentSession)
}

// optionalSession answers {"session": null} when the user has no such session.
func (h *Handler) optionalSession(
	w http.ResponseWriter,
	r *http.Request,
	get func(ctx context.Context, userID string) (models.WorkSession, error),
) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := get(r.Context(), id)
	if errors.Is(err, service.ErrNoActiveSession) {
		utils.WriteJSON(w, models.SessionResponse{}, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Session: &session}, http.StatusOK)
}

func (h *Handler) todaysSessions(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sessions, err := h.services.WorkSessionService.GetTodaysSessions(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionsResponse{Sessions: nonNil(sessions)}, http.StatusOK)
}

func (h *Handler) journal(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dateRange, err := parseDateRange(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	days, err := h.services.WorkSessionService.GetJournal(r.Context(), id, dateRange)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.JournalResponse{Days: nonNil(days)}, http.StatusOK)
}

func (h *Handler) pauseSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.services.WorkSessionService.PauseSession)
}

func (h *Handler) resumeSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.services.WorkSessionService.ResumeSession)
}

func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.services.WorkSessionService.CompleteSession)
}

// transition applies a lifecycle operation to the session named by {id}.
func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, sessionID, userID string) (models.WorkSession, error),
) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := apply(r.Context(), chi.URLParam(r, "id"), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Session: &session}, http.StatusOK)
}

// parseDateRange reads start_date and end_date (RFC 3339). Both absent
// yields nil; only one of them is an error.
func parseDateRange(r *http.Request) (*models.DateRange, error) {
	query := r.URL.Query()
	rawStart, rawEnd := query.Get("start_date"), query.Get("end_date")

	if rawStart == "" && rawEnd == "" {
		return nil, nil
	}
	if rawStart == "" || rawEnd == "" {
		return nil, fmt.Errorf("%w: start_date and end_date go together", ErrInvalidQuery)
	}

	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %w", ErrInvalidQuery, err)
	}
	end, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date: %w", ErrInvalidQuery, err)
	}

	return &models.DateRange{Start: start, End: end}, nil
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
