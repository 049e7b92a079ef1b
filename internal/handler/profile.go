package handler

import (
	"log/slog"
	"net/http"

	profileModels "nextstep/internal/domain/models/profile"
	"nextstep/internal/httputil"
	profileSvc "nextstep/internal/service/profile"
)

// ProfileHandler handles goal and stats requests
type ProfileHandler struct {
	goals  *profileSvc.GoalService
	logger *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(goals *profileSvc.GoalService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		goals:  goals,
		logger: logger,
	}
}

// ListGoals returns all goals
// GET /api/goals
func (h *ProfileHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goals.ListGoals(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, goals)
}

// CreateGoal creates a new goal
// POST /api/goals
func (h *ProfileHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req profileSvc.CreateGoalRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goals.CreateGoal(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, goal)
}

// UpdateGoal applies a partial update to a goal
// PATCH /api/goals/{id}
func (h *ProfileHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	var req profileSvc.UpdateGoalRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goals.UpdateGoal(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, goal)
}

// DeleteGoal removes a goal
// DELETE /api/goals/{id}
func (h *ProfileHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	if err := h.goals.DeleteGoal(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats returns the exploration stats record
// GET /api/profile/stats
func (h *ProfileHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.goals.GetStats(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, stats)
}

// UpdateStats overwrites the exploration stats record
// PUT /api/profile/stats
func (h *ProfileHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var req profileModels.Stats
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stats, err := h.goals.UpdateStats(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}
