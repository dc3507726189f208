package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"veriface-backend/internal/models"
)

// ErrDuplicate maps the store's unique-constraint violation (SQLSTATE 23505).
// It covers both a reused roll number at enrollment and a repeated
// attendance mark.
var ErrDuplicate = errors.New("duplicate key")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type StudentRepo struct {
	pool *pgxpool.Pool
}

func NewStudentRepo(pool *pgxpool.Pool) *StudentRepo {
	return &StudentRepo{pool: pool}
}

func (r *StudentRepo) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, full_name, roll, level, class_id, face_embedding, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING created_at`

	student.ID = uuid.New()
	student.IsApproved = false

	err := r.pool.QueryRow(ctx, query,
		student.ID, student.FullName, student.Roll, student.Level,
		student.ClassID, student.FaceEmbedding,
	).Scan(&student.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *StudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, full_name, roll, level, class_id, face_embedding, is_approved, created_at
		FROM students WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.FullName, &student.Roll, &student.Level,
		&student.ClassID, &student.FaceEmbedding, &student.IsApproved, &student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *StudentRepo) ListUnapproved(ctx context.Context) ([]models.Student, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, roll, level, class_id, is_approved, created_at
		FROM students
		WHERE is_approved = FALSE
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var s models.Student
		if scanErr := rows.Scan(
			&s.ID, &s.FullName, &s.Roll, &s.Level, &s.ClassID, &s.IsApproved, &s.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

func (r *StudentRepo) ListByClass(ctx context.Context, classID string) ([]models.Student, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, roll, level, class_id, is_approved, created_at
		FROM students
		WHERE class_id = $1 AND is_approved = TRUE
		ORDER BY roll ASC
	`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var s models.Student
		if scanErr := rows.Scan(
			&s.ID, &s.FullName, &s.Roll, &s.Level, &s.ClassID, &s.IsApproved, &s.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

func (r *StudentRepo) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "UPDATE students SET is_approved = TRUE WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
