// Package audit provides the invocation audit trail for guarded actions.
package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/safedep/coeur/core/action"
)

// Outcome classifies how a guarded invocation ended.
type Outcome string

const (
	// OutcomeOK indicates the invocation ran to completion.
	OutcomeOK Outcome = "ok"
	// OutcomePermissionDenied indicates a permission check aborted the invocation.
	OutcomePermissionDenied Outcome = "permission_denied"
	// OutcomeValidationFailed indicates a validator aborted the invocation.
	OutcomeValidationFailed Outcome = "validation_failed"
	// OutcomeError indicates the method or the pipeline itself failed.
	OutcomeError Outcome = "error"
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	return string(o)
}

// Record is one audit-trail entry for a guarded invocation.
type Record struct {
	// ID is the unique identifier for this entry.
	ID uuid.UUID `json:"id"`
	// Timestamp is when the invocation finished (UTC).
	Timestamp time.Time `json:"timestamp"`
	// Action is the name of the invoked action.
	Action string `json:"action"`
	// Caller identifies who the action ran on behalf of.
	Caller string `json:"caller"`
	// Outcome classifies the result.
	Outcome Outcome `json:"outcome"`
	// Detail carries the error message for non-OK outcomes.
	Detail string `json:"detail,omitempty"`
}

// NewRecord creates a record for a finished invocation, classifying the
// returned error.
func NewRecord(actionName, caller string, err error) *Record {
	rec := &Record{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Action:    actionName,
		Caller:    caller,
		Outcome:   Classify(err),
	}
	if err != nil {
		rec.Detail = err.Error()
	}
	return rec
}

// Classify maps a pipeline error to an outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	var permErr *action.PermissionError
	if errors.As(err, &permErr) {
		return OutcomePermissionDenied
	}

	var valErr *action.ValidationError
	if errors.As(err, &valErr) {
		return OutcomeValidationFailed
	}

	return OutcomeError
}

// Recorder persists invocation records.
type Recorder interface {
	// SaveRecord persists a new audit record.
	SaveRecord(ctx context.Context, rec *Record) error

	// ListRecords retrieves the most recent records, newest first.
	// A non-positive limit returns everything.
	ListRecords(ctx context.Context, limit int) ([]*Record, error)
}
