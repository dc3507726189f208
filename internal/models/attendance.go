package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one verified presence. The (SessionID, StudentID) pair
// is unique; VerifiedAt is assigned by the database at insertion.
type AttendanceRecord struct {
	SessionID  uuid.UUID `json:"session_id"`
	StudentID  uuid.UUID `json:"student_id"`
	VerifiedAt time.Time `json:"verified_at"`
}

// AttendanceEntry is the observer-facing view, joined to the student roster.
type AttendanceEntry struct {
	FullName   string    `json:"full_name"`
	Roll       string    `json:"roll"`
	VerifiedAt time.Time `json:"verified_at"`
}

type MarkRequest struct {
	Token         string    `json:"token"`
	StudentID     string    `json:"student_id"`
	FaceEmbedding []float64 `json:"face_embedding"`
}

// AttendanceEvent is the push payload fanned out to session observers. It
// carries the same data a poll of the session ledger would return.
type AttendanceEvent struct {
	SessionID  uuid.UUID `json:"session_id"`
	FullName   string    `json:"full_name"`
	Roll       string    `json:"roll"`
	VerifiedAt time.Time `json:"verified_at"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
