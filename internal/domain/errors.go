package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSchema signals an invalid record schema or stage definition.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrUnknownField signals a reference to a field the schema does not declare.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidRecord signals a record that failed validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidCriteria signals criteria naming filters the engine does not know.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrInvalidStatus signals an unknown mentorship request status or action.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidTransition signals a status change that is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// TransitionError wraps ErrInvalidTransition with the statuses involved.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NewTransitionError creates a transition error.
func NewTransitionError(from, to string) error {
	return &TransitionError{From: from, To: to}
}
