package services

// Typed service errors, switched to HTTP statuses in one handler helper.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

type RateLimitError struct{ Message string }

func (e *RateLimitError) Error() string { return e.Message }

// ExpiredError means the session token existed but its window has lapsed.
// Reported separately from NotFoundError so a client can tell "wrong code"
// from "too slow".
type ExpiredError struct{ Message string }

func (e *ExpiredError) Error() string { return e.Message }

// RejectedError is a failed biometric match. The client may retry with a
// fresh capture.
type RejectedError struct{ Message string }

func (e *RejectedError) Error() string { return e.Message }

// DimensionError is a structural client fault: the candidate vector's length
// differs from the enrolled reference. Never retried automatically.
type DimensionError struct{ Message string }

func (e *DimensionError) Error() string { return e.Message }
