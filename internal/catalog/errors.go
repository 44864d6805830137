package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned (wrapped) when an operation targets an id that does not exist.
var ErrNotFound = errors.New("not found")

// InvalidAuthorReferenceMessage is reported when a book points at a missing author.
const InvalidAuthorReferenceMessage = "invalid author reference"

// NotFoundError wraps ErrNotFound with the entity and id that were looked up.
func NotFoundError(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or constraint-violating input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func NewValidationError(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// InvalidAuthorReference is the error for a book whose author_id matches no author.
func InvalidAuthorReference() *ValidationError {
	return NewValidationError(InvalidAuthorReferenceMessage, FieldError{
		Field:   "author_id",
		Message: "author does not exist",
	})
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// ConflictError reports a write refused because of dependent records.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps any other persistence failure. The cause is kept for logs
// and must not be shown to API clients.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflictError(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// WrapStoreError passes catalog errors through unchanged and wraps anything
// else as a StoreError for op.
func WrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || IsValidationError(err) || IsConflictError(err) || IsStoreError(err) {
		return err
	}
	return NewStoreError(op, err)
}
