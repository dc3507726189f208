package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"veriface-backend/internal/models"
	"veriface-backend/internal/repository"
)

// SessionService is the session registry: it issues time-bounded attendance
// windows and resolves capability tokens against the clock. Expiry is lazy —
// evaluated at lookup, never swept by a background job.
type SessionService struct {
	sessionRepo *repository.SessionRepo
	window      time.Duration
}

func NewSessionService(sessionRepo *repository.SessionRepo, window time.Duration) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		window:      window,
	}
}

// Create opens an attendance window for a class. The token is a v4 UUID —
// 122 bits of randomness, unguessable within the window.
func (s *SessionService) Create(ctx context.Context, instructorID uuid.UUID, classID string) (*models.Session, error) {
	if classID == "" {
		classID = "default_class"
	}

	now := time.Now()
	session := &models.Session{
		InstructorID: instructorID,
		ClassID:      classID,
		Token:        uuid.New(),
		StartTime:    now,
		EndTime:      now.Add(s.window),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve looks a session up by token. An unknown token is NotFoundError; a
// known token whose window has lapsed is ExpiredError, so clients can tell
// "wrong code" from "too slow".
func (s *SessionService) Resolve(ctx context.Context, tokenStr string) (*models.Session, error) {
	token, err := uuid.Parse(tokenStr)
	if err != nil {
		return nil, &NotFoundError{Message: "Session not found"}
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Session not found"}
		}
		return nil, err
	}

	if session.StatusAt(time.Now()) != models.SessionActive {
		return nil, &ExpiredError{Message: "Session has expired"}
	}

	return session, nil
}

// Get returns a session by id regardless of expiry, for instructors reading
// back their own sessions.
func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Session not found"}
		}
		return nil, err
	}
	return session, nil
}
