package domain

import (
	"errors"
	"fmt"
)

var (
	// Criteria / input validation
	ErrInvalidCriteria = errors.New("invalid criteria")
	ErrInvalidInput    = errors.New("invalid input")

	// Identity
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("forbidden")

	// Users
	ErrUserNotFound  = errors.New("user not found")
	ErrUnknownUser   = errors.New("unknown user")
	ErrUnknownMentor = errors.New("unknown mentor")

	// Matches
	ErrMatchNotFound       = errors.New("match not found")
	ErrInvalidState        = errors.New("match is not in the required state")
	ErrDuplicateRequest    = errors.New("a pending request to this mentor already exists")
	ErrRerequestNotAllowed = errors.New("mentor already rejected a request from this mentee")
)

// ValidationError reports which field failed and why. It unwraps to Kind,
// so callers can match it with errors.Is against ErrInvalidCriteria or
// ErrInvalidInput.
type ValidationError struct {
	Kind   error
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewCriteriaError returns a field-level ErrInvalidCriteria.
func NewCriteriaError(field, reason string) error {
	return &ValidationError{Kind: ErrInvalidCriteria, Field: field, Reason: reason}
}

// NewInputError returns a field-level ErrInvalidInput.
func NewInputError(field, reason string) error {
	return &ValidationError{Kind: ErrInvalidInput, Field: field, Reason: reason}
}
