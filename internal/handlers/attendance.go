package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"veriface-backend/internal/models"
	"veriface-backend/internal/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Mark verifies a live embedding and writes the ledger. Submitted by the
// capture client with the session token as its only capability; no
// instructor credential is involved.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req models.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	event, err := h.attendance.Mark(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Attendance marked successfully!",
		"verified_at": event.VerifiedAt,
	})
}

// List is the poll endpoint observers reconcile against.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid session ID", r))
		return
	}

	entries, err := h.attendance.List(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"attendance": entries})
}
