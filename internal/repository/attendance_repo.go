package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"veriface-backend/internal/models"
)

type AttendanceRepo struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepo(pool *pgxpool.Pool) *AttendanceRepo {
	return &AttendanceRepo{pool: pool}
}

// Record inserts exactly one attendance row per (session, student) pair.
// Uniqueness rides on the table's composite primary key, so concurrent
// writers — including other server processes on the same store — race at
// the constraint, not in application code. The losing insert gets
// ErrDuplicate and the row count for the pair stays at one. verified_at is
// assigned by the database, never by the caller.
func (r *AttendanceRepo) Record(ctx context.Context, sessionID, studentID uuid.UUID) (*models.AttendanceRecord, error) {
	record := &models.AttendanceRecord{
		SessionID: sessionID,
		StudentID: studentID,
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO attendance (session_id, student_id)
		VALUES ($1, $2)
		RETURNING verified_at
	`, sessionID, studentID).Scan(&record.VerifiedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListBySession is the reconciliation read: the authoritative, complete
// ledger for a session in verified_at order. Observers poll it to recover
// any pushes they missed.
func (r *AttendanceRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.AttendanceEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.full_name, s.roll, a.verified_at
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		WHERE a.session_id = $1
		ORDER BY a.verified_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.AttendanceEntry, 0)
	for rows.Next() {
		var e models.AttendanceEntry
		if scanErr := rows.Scan(&e.FullName, &e.Roll, &e.VerifiedAt); scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
