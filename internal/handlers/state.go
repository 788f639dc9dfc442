package handlers

import (
	"encoding/json"
	"net/http"

	"dconn.dev/portfolio/internal/models"
)

// StateHandler exposes the visitor's view state as JSON
type StateHandler struct {
	sessions *SessionResolver
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(sessions *SessionResolver) *StateHandler {
	return &StateHandler{sessions: sessions}
}

type stateResponse struct {
	ActiveSection models.Section   `json:"active_section"`
	Known         bool             `json:"known"`
	Sections      []models.Section `json:"sections"`
}

func newStateResponse(active models.Section) stateResponse {
	return stateResponse{
		ActiveSection: active,
		Known:         active.Known(),
		Sections:      models.KnownSections(),
	}
}

// GetState handles GET /api/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.resolve(w, r)
	respondJSON(w, http.StatusOK, newStateResponse(state.ActiveSection()))
}

// PutState handles PUT /api/state. Like the navigation form, it stores
// whatever section it is given
func (h *StateHandler) PutState(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActiveSection models.Section `json:"active_section"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state := h.sessions.resolve(w, r)
	state.SetActiveSection(req.ActiveSection)
	respondJSON(w, http.StatusOK, newStateResponse(state.ActiveSection()))
}
