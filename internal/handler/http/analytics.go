package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
)

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics, err := h.services.AnalyticsService.ComputeMetrics(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MetricsResponse{Metrics: metrics}, http.StatusOK)
}

// charts accepts an optional months parameter; absent means the default
// series length.
func (h *Handler) charts(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var months int
	if raw := r.URL.Query().Get("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: months: %w", ErrInvalidQuery, err))
			return
		}
	}

	charts, err := h.services.AnalyticsService.Charts(r.Context(), id, months)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, charts, http.StatusOK)
}
