package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionActive  SessionStatus = "active"
	SessionExpired SessionStatus = "expired"
)

// Session is an attendance window. It has no mutable state; validity is a
// pure function of the clock against [StartTime, EndTime).
type Session struct {
	ID           uuid.UUID `json:"id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	ClassID      string    `json:"class_id"`
	Token        uuid.UUID `json:"token"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// StatusAt classifies the session at the given instant. The window is
// half-open: the start instant is in, the end instant is out.
func (s *Session) StatusAt(t time.Time) SessionStatus {
	if t.Before(s.StartTime) || !t.Before(s.EndTime) {
		return SessionExpired
	}
	return SessionActive
}
