package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestJWTAuth_RoundTrip(t *testing.T) {
	j := NewJWTAuth("test-secret")
	instructorID := uuid.New()

	token, err := j.GenerateAccessToken(instructorID, "teacher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	parsed, err := j.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if parsed != instructorID {
		t.Errorf("parsed id = %v, want %v", parsed, instructorID)
	}
}

func TestJWTAuth_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTAuth("secret-a")
	verifier := NewJWTAuth("secret-b")

	token, err := issuer.GenerateAccessToken(uuid.New(), "teacher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestJWTAuth_Middleware(t *testing.T) {
	j := NewJWTAuth("test-secret")
	instructorID := uuid.New()

	token, err := j.GenerateAccessToken(instructorID, "teacher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	var gotID uuid.UUID
	handler := j.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetInstructorID(r.Context())
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/list", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}

	if gotID != instructorID {
		t.Errorf("context instructor id = %v, want %v", gotID, instructorID)
	}
}
