package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"veriface-backend/internal/models"
)

type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create persists a session row. Sessions are never updated or deleted;
// rows past their window stay behind as inert history.
func (r *SessionRepo) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, instructor_id, class_id, token, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)`

	session.ID = uuid.New()

	_, err := r.pool.Exec(ctx, query,
		session.ID, session.InstructorID, session.ClassID,
		session.Token, session.StartTime, session.EndTime,
	)
	return err
}

// GetByToken looks a session up by its capability token. Expiry is not
// evaluated here; the caller classifies the row against the clock.
func (r *SessionRepo) GetByToken(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, instructor_id, class_id, token, start_time, end_time
		FROM sessions WHERE token = $1`

	err := r.pool.QueryRow(ctx, query, token).Scan(
		&session.ID, &session.InstructorID, &session.ClassID,
		&session.Token, &session.StartTime, &session.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, instructor_id, class_id, token, start_time, end_time
		FROM sessions WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.InstructorID, &session.ClassID,
		&session.Token, &session.StartTime, &session.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}
