package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
)

func (h *Handler) upsertEarnings(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.EarningsRequest
	if err = utils.ReadJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	earnings, err := h.services.EarningsService.UpsertEarnings(r.Context(), id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EarningsResponse{Earnings: earnings}, http.StatusOK)
}

func (h *Handler) listEarnings(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	earnings, err := h.services.EarningsService.ListEarnings(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EarningsListResponse{Earnings: nonNil(earnings)}, http.StatusOK)
}
