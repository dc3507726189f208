package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"veriface-backend/internal/models"
	"veriface-backend/internal/repository"
)

// EnrollmentService manages the student roster. Enrollment captures the
// reference embedding once; a student cannot mark attendance until an
// instructor approves them.
type EnrollmentService struct {
	studentRepo  *repository.StudentRepo
	embeddingDim int
}

func NewEnrollmentService(studentRepo *repository.StudentRepo, embeddingDim int) *EnrollmentService {
	return &EnrollmentService{
		studentRepo:  studentRepo,
		embeddingDim: embeddingDim,
	}
}

func (s *EnrollmentService) Enroll(ctx context.Context, req models.EnrollRequest) (*models.Student, error) {
	fieldErrors := make(map[string]string)

	if req.FullName == "" {
		fieldErrors["full_name"] = "Full name is required"
	}
	if req.Roll == "" {
		fieldErrors["roll"] = "Roll number is required"
	}
	if req.Level == "" {
		fieldErrors["level"] = "Level is required"
	}
	if req.ClassID == "" {
		fieldErrors["class_id"] = "Class is required"
	}
	if len(req.FaceEmbedding) == 0 {
		fieldErrors["face_embedding"] = "Face embedding is required"
	}

	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	// Reference vectors are fixed-dimension for every student; a wrong
	// length here would poison every later comparison.
	if len(req.FaceEmbedding) != s.embeddingDim {
		return nil, &DimensionError{
			Message: fmt.Sprintf("Face embedding must have %d dimensions, got %d", s.embeddingDim, len(req.FaceEmbedding)),
		}
	}

	student := &models.Student{
		FullName:      req.FullName,
		Roll:          req.Roll,
		Level:         req.Level,
		ClassID:       req.ClassID,
		FaceEmbedding: req.FaceEmbedding,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Message: "A student with this roll number already exists"}
		}
		return nil, err
	}

	return student, nil
}

func (s *EnrollmentService) ListUnapproved(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.ListUnapproved(ctx)
}

func (s *EnrollmentService) Approve(ctx context.Context, studentID uuid.UUID) error {
	ok, err := s.studentRepo.Approve(ctx, studentID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Message: "Student not found"}
	}
	return nil
}

func (s *EnrollmentService) ListByClass(ctx context.Context, classID string) ([]models.Student, error) {
	return s.studentRepo.ListByClass(ctx, classID)
}
