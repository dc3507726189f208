package models

import (
	"testing"
	"time"
)

func TestSessionStatusAt(t *testing.T) {
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	session := &Session{
		StartTime: start,
		EndTime:   start.Add(120 * time.Second),
	}

	tests := []struct {
		name     string
		at       time.Time
		expected SessionStatus
	}{
		{"at start", start, SessionActive},
		{"mid window", start.Add(60 * time.Second), SessionActive},
		{"just before end", start.Add(119*time.Second + 900*time.Millisecond), SessionActive},
		{"exactly at end", start.Add(120 * time.Second), SessionExpired},
		{"just after end", start.Add(120*time.Second + 100*time.Millisecond), SessionExpired},
		{"long after end", start.Add(time.Hour), SessionExpired},
		{"before start", start.Add(-time.Second), SessionExpired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := session.StatusAt(tc.at); got != tc.expected {
				t.Errorf("StatusAt(%v) = %v, want %v", tc.at, got, tc.expected)
			}
		})
	}
}
