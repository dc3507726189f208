package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"veriface-backend/internal/middleware"
	"veriface-backend/internal/services"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create opens a new attendance window for the authenticated instructor.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	instructorID := middleware.GetInstructorID(r.Context())

	var req struct {
		ClassID string `json:"class_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	session, err := h.sessions.Create(r.Context(), instructorID, req.ClassID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id": session.ID,
		"token":      session.Token,
		"class_id":   session.ClassID,
		"start_time": session.StartTime,
		"end_time":   session.EndTime,
	})
}

// Resolve is the capture client's token lookup: 200 while the window is
// open, 410 after it lapses, 404 for a token that never existed.
func (h *SessionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	session, err := h.sessions.Resolve(r.Context(), token)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": session.ID,
		"class_id":   session.ClassID,
		"end_time":   session.EndTime,
	})
}
