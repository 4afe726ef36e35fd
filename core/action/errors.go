package action

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned when an action is invoked before a method has
// been registered.
var ErrNotRegistered = errors.New("action: no method registered")

// ErrAlreadyRegistered is returned when a second method is registered on the
// same action.
var ErrAlreadyRegistered = errors.New("action: method already registered")

// AlreadySetError is returned when a set-once field of an action is set a
// second time. Concept names the conflicting field.
type AlreadySetError struct {
	Concept string
}

func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("action: %s already set", e.Concept)
}

// PermissionError is the failure reported by a permission check. It aborts
// the invocation before any validator or the method runs.
type PermissionError struct {
	// Permission identifies the failing permission, when known.
	Permission string
	// Reason explains why the caller was denied.
	Reason string
}

func (e *PermissionError) Error() string {
	if e.Permission == "" {
		return fmt.Sprintf("permission denied: %s", e.Reason)
	}
	return fmt.Sprintf("permission denied (%s): %s", e.Permission, e.Reason)
}

// ValidationError is the failure reported by a validator. Only the first
// failing validator surfaces; later validators and the method never run.
type ValidationError struct {
	// Message is a human-readable description of the failure.
	Message string
	// Details optionally carries structured information about the failure.
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s (%d details)", e.Message, len(e.Details))
}
