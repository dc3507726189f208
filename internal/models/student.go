package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is an enrolled identity. FaceEmbedding is the reference vector
// captured once at enrollment; it is never mutated afterwards.
type Student struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Roll          string    `json:"roll"`
	Level         string    `json:"level"`
	ClassID       string    `json:"class_id"`
	FaceEmbedding []float64 `json:"-"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
}

type EnrollRequest struct {
	FullName      string    `json:"full_name"`
	Roll          string    `json:"roll"`
	Level         string    `json:"level"`
	ClassID       string    `json:"class_id"`
	FaceEmbedding []float64 `json:"face_embedding"`
}
