package errors

import "fmt"

// ValidationError signals a request payload that failed schema validation.
// It is translated to a 400 response.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidation creates a ValidationError
func NewValidation(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// NotFoundError signals that no product exists at the requested identifier.
// Malformed identifiers map here as well, never to a 400. It is translated
// to a 404 response.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with id %s not found!", e.ID)
}

// NewNotFound creates a NotFoundError for the given product ID
func NewNotFound(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// InternalError wraps anything that is neither a validation failure nor a
// missing record: store outages, decode failures, programming errors. The
// wrapped cause is logged but never exposed on the wire.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// NewInternal creates an InternalError
func NewInternal(err error) *InternalError {
	return &InternalError{Err: err}
}
