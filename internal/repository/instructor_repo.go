package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"veriface-backend/internal/models"
)

type InstructorRepo struct {
	pool *pgxpool.Pool
}

func NewInstructorRepo(pool *pgxpool.Pool) *InstructorRepo {
	return &InstructorRepo{pool: pool}
}

func (r *InstructorRepo) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (id, email, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	instructor.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		instructor.ID, instructor.Email, instructor.PasswordHash, instructor.FullName,
	).Scan(&instructor.CreatedAt)
}

func (r *InstructorRepo) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	query := `SELECT id, email, password_hash, full_name, created_at, last_login_at
		FROM instructors WHERE email = $1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&instructor.ID, &instructor.Email, &instructor.PasswordHash,
		&instructor.FullName, &instructor.CreatedAt, &instructor.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

func (r *InstructorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	query := `SELECT id, email, password_hash, full_name, created_at, last_login_at
		FROM instructors WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&instructor.ID, &instructor.Email, &instructor.PasswordHash,
		&instructor.FullName, &instructor.CreatedAt, &instructor.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

func (r *InstructorRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "UPDATE instructors SET last_login_at = $1 WHERE id = $2", time.Now(), id)
	return err
}
