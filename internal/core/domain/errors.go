package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPostNotFound       = errors.New("post not found")
	ErrForbidden          = errors.New("access forbidden")

	// ErrDependencyFailed marks a creation rejected because a referenced
	// record could not be confirmed at its owning service. Nothing is
	// persisted when this is returned.
	ErrDependencyFailed = errors.New("referenced record could not be confirmed")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level input failures. It is produced
// before any persistence side effect and rendered as a structured list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}
