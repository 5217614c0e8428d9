package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"playday/internal/service"
)

// AnalyticsHandler serves the play counter endpoints
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

type eventRequest struct {
	Game string `json:"game"`
	Date string `json:"date"`
	Kind string `json:"kind"`
}

type eventResponse struct {
	ID string `json:"id"`
}

// RecordEvent handles POST /api/events
func (h *AnalyticsHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	event, err := h.analytics.Record(req.Game, req.Date, req.Kind)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEvent) {
			respondWithError(w, http.StatusBadRequest, "Invalid event", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to record event", err)
		return
	}

	respondWithJSON(w, http.StatusAccepted, eventResponse{ID: event.ID})
}

// Summary handles GET /api/admin/analytics?days=N
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid days parameter", "", nil)
			return
		}
		days = parsed
	}

	counts, err := h.analytics.Summary(days)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load analytics", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"counts": counts})
}
