package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"veriface-backend/internal/models"
	"veriface-backend/internal/services"
)

// ─── Error Mapping Tests ───

func TestHandleServiceError_StatusCodes(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"roll": "required"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"dimension mismatch", &services.DimensionError{Message: "wrong dimension"}, http.StatusBadRequest, "DIMENSION_MISMATCH"},
		{"conflict", &services.ConflictError{Message: "already marked"}, http.StatusConflict, "CONFLICT"},
		{"not found", &services.NotFoundError{Message: "no such session"}, http.StatusNotFound, "NOT_FOUND"},
		{"expired", &services.ExpiredError{Message: "window closed"}, http.StatusGone, "SESSION_EXPIRED"},
		{"rejected", &services.RejectedError{Message: "no match"}, http.StatusUnauthorized, "FACE_REJECTED"},
		{"unauthorized", &services.UnauthorizedError{Message: "bad credentials"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", &services.ForbiddenError{Message: "not approved"}, http.StatusForbidden, "FORBIDDEN"},
		{"unexpected", errors.New("io failure"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/mark", nil)

			handleServiceError(rr, req, tc.err)

			if rr.Code != tc.expectedCode {
				t.Errorf("status = %d, want %d", rr.Code, tc.expectedCode)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error.Code != tc.expectedBody {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tc.expectedBody)
			}
		})
	}
}

func TestHandleServiceError_ExpiredDistinctFromNotFound(t *testing.T) {
	rrExpired := httptest.NewRecorder()
	rrMissing := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil)

	handleServiceError(rrExpired, req, &services.ExpiredError{Message: "Session has expired"})
	handleServiceError(rrMissing, req, &services.NotFoundError{Message: "Session not found"})

	if rrExpired.Code == rrMissing.Code {
		t.Errorf("expired and not-found must be distinguishable, both returned %d", rrExpired.Code)
	}
}

// ─── Request Parsing Tests ───

func TestMarkRequest_Parsing(t *testing.T) {
	body := map[string]interface{}{
		"token":          "3f6cbb6e-5e47-4f27-9b63-2a4f0d2a9a11",
		"student_id":     "8a1d41cb-10a2-4a37-b347-9b8e0e3f0f02",
		"face_embedding": []float64{0.1, 0.2, 0.3},
	}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/mark", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	var parsed models.MarkRequest
	if err := json.NewDecoder(req.Body).Decode(&parsed); err != nil {
		t.Fatalf("Failed to parse request body: %v", err)
	}

	if parsed.Token != "3f6cbb6e-5e47-4f27-9b63-2a4f0d2a9a11" {
		t.Errorf("unexpected token %q", parsed.Token)
	}
	if len(parsed.FaceEmbedding) != 3 {
		t.Errorf("embedding length = %d, want 3", len(parsed.FaceEmbedding))
	}
}

func TestEnrollRequest_Parsing(t *testing.T) {
	body := map[string]interface{}{
		"full_name":      "Test Student",
		"roll":           "CS-042",
		"level":          "300",
		"class_id":       "cs-300a",
		"face_embedding": []float64{0.1, 0.2},
	}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/register", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	var parsed models.EnrollRequest
	if err := json.NewDecoder(req.Body).Decode(&parsed); err != nil {
		t.Fatalf("Failed to parse request body: %v", err)
	}

	if parsed.Roll != "CS-042" {
		t.Errorf("Expected roll 'CS-042', got %q", parsed.Roll)
	}
}

// ─── JSON Response Tests ───

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusCreated, map[string]interface{}{
		"message": "Attendance marked successfully!",
	})

	if rr.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", rr.Header().Get("Content-Type"))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "Attendance marked successfully!" {
		t.Errorf("unexpected message %v", result["message"])
	}
}

func TestErrorResp_CarriesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil)
	req.Header.Set("X-Request-ID", "req-123")

	resp := errorResp("NOT_FOUND", "Session not found", req)

	if resp.Error.RequestID != "req-123" {
		t.Errorf("request_id = %q, want %q", resp.Error.RequestID, "req-123")
	}
}
