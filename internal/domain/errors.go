package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidPassword means no event's hash matched the candidate.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrStorageUnavailable wraps transient storage failures. Safe to
	// retry: upsert is idempotent.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects malformed input before it reaches storage
// or credential checks.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
