package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/league-admin/internal/platform/database"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
)

// StoreError is a classified storage failure. Error keeps the driver cause
// for logs; PublicMessage is safe to hand to a client.
type StoreError struct {
	kind  error
	op    string
	msg   string
	cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%v: %s: %s: %v", e.kind, e.op, e.msg, e.cause)
}

func (e *StoreError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func (e *StoreError) PublicMessage() string {
	return fmt.Sprintf("%v: %s: %s", e.kind, e.op, e.msg)
}

// writeError classifies a failed create or update. A dangling reference is
// the caller's fault; a duplicate is a conflict.
func writeError(op string, err error) error {
	return classifyWrite(op, err, "duplicate entry")
}

func classifyWrite(op string, err error, duplicate string) error {
	switch {
	case database.IsReferenceViolation(err):
		return &StoreError{kind: ErrInvalidInput, op: op, msg: "unknown reference", cause: err}
	case database.IsUniqueViolation(err):
		return &StoreError{kind: ErrConflict, op: op, msg: duplicate, cause: err}
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleteError classifies a failed delete. A row still referenced elsewhere
// cannot be removed.
func deleteError(op string, err error) error {
	if database.IsReferenceViolation(err) {
		return &StoreError{kind: ErrConflict, op: op, msg: "still referenced", cause: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
