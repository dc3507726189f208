package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"veriface-backend/internal/facematch"
	"veriface-backend/internal/models"
	"veriface-backend/internal/repository"
)

const ExportQueue = "queue:sheet-export"

// SessionChannel is the Redis pub/sub channel carrying attendance events for
// one session. The websocket hub subscribes to it per session.
func SessionChannel(sessionID uuid.UUID) string {
	return "session_updates:" + sessionID.String()
}

// AttendanceService orchestrates a mark: resolve the session token, verify
// the live embedding against the enrolled reference, write the ledger, then
// fan out. Only the ledger write decides correctness; publish and export are
// best-effort side channels that never fail the request.
type AttendanceService struct {
	sessions       *SessionService
	studentRepo    *repository.StudentRepo
	attendanceRepo *repository.AttendanceRepo
	redis          *redis.Client
	threshold      float64
	exportEnabled  bool
}

func NewAttendanceService(
	sessions *SessionService,
	studentRepo *repository.StudentRepo,
	attendanceRepo *repository.AttendanceRepo,
	redisClient *redis.Client,
	threshold float64,
	exportEnabled bool,
) *AttendanceService {
	return &AttendanceService{
		sessions:       sessions,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		redis:          redisClient,
		threshold:      threshold,
		exportEnabled:  exportEnabled,
	}
}

func (s *AttendanceService) Mark(ctx context.Context, req models.MarkRequest) (*models.AttendanceEvent, error) {
	session, err := s.sessions.Resolve(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"student_id": "Invalid student ID"}}
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Student not found"}
		}
		return nil, err
	}

	if !student.IsApproved {
		return nil, &ForbiddenError{Message: "Student has not been approved yet"}
	}

	switch facematch.Verify(student.FaceEmbedding, req.FaceEmbedding, s.threshold) {
	case facematch.DimensionMismatch:
		return nil, &DimensionError{Message: "Face embedding has the wrong dimension"}
	case facematch.Reject:
		return nil, &RejectedError{Message: "Face verification failed. Please try again."}
	}

	record, err := s.attendanceRepo.Record(ctx, session.ID, student.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Message: "You have already marked your attendance for this session"}
		}
		return nil, err
	}

	event := &models.AttendanceEvent{
		SessionID:  session.ID,
		FullName:   student.FullName,
		Roll:       student.Roll,
		VerifiedAt: record.VerifiedAt,
	}

	// The ledger write has succeeded; nothing past this point may undo it.
	s.publish(ctx, event)
	s.enqueueExport(ctx, event)

	return event, nil
}

// List is the reconciliation read exposed to observers: the full session
// ledger in verified_at order, straight from the store. Works on expired
// sessions too — the ledger outlives the window.
func (s *AttendanceService) List(ctx context.Context, sessionID uuid.UUID) ([]models.AttendanceEntry, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListBySession(ctx, sessionID)
}

func (s *AttendanceService) publish(ctx context.Context, event *models.AttendanceEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("attendance publish: marshal failed: %v", err)
		return
	}
	if err := s.redis.Publish(ctx, SessionChannel(event.SessionID), data).Err(); err != nil {
		log.Printf("attendance publish: %v", err)
	}
}

func (s *AttendanceService) enqueueExport(ctx context.Context, event *models.AttendanceEvent) {
	if !s.exportEnabled {
		return
	}
	job := models.ExportJob{
		Roll:       event.Roll,
		FullName:   event.FullName,
		VerifiedAt: event.VerifiedAt,
	}
	data, err := json.Marshal(job)
	if err != nil {
		log.Printf("attendance export: marshal failed: %v", err)
		return
	}
	if err := s.redis.RPush(ctx, ExportQueue, data).Err(); err != nil {
		log.Printf("attendance export: enqueue failed: %v", err)
	}
}
