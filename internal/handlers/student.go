package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"veriface-backend/internal/models"
	"veriface-backend/internal/services"
)

type StudentHandler struct {
	enrollment *services.EnrollmentService
}

func NewStudentHandler(enrollment *services.EnrollmentService) *StudentHandler {
	return &StudentHandler{enrollment: enrollment}
}

func (h *StudentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req models.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	student, err := h.enrollment.Enroll(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      student.ID,
		"message": fmt.Sprintf("Registration successful for %s. Please wait for instructor approval.", student.FullName),
	})
}

func (h *StudentHandler) ListUnapproved(w http.ResponseWriter, r *http.Request) {
	students, err := h.enrollment.ListUnapproved(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"students": students})
}

func (h *StudentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	if err := h.enrollment.Approve(r.Context(), studentID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Student approved successfully"})
}

// ListByClass returns the approved roster of a class, for the capture client
// to offer identity selection.
func (h *StudentHandler) ListByClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classId")

	students, err := h.enrollment.ListByClass(r.Context(), classID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"students": students})
}
