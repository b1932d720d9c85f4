package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure for the HTTP boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindStorage
)

// AppError is the typed error carried from services up to the error
// handler middleware. Field is set for validation failures only.
type AppError struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound signals that the named resource does not resolve. Surfaced as
// an absent result (404), not a server failure.
func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// Validation signals malformed input on a specific field, rejected before
// any state was mutated.
func Validation(field, message string) *AppError {
	return &AppError{Kind: KindValidation, Field: field, Message: message}
}

// Conflict signals a duplicate business key or a blocked referential action.
func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// Storage wraps a store or blob failure. Not retried; fatal for the request.
func Storage(err error) *AppError {
	return &AppError{Kind: KindStorage, Message: "storage failure", Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a NotFound application error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err is a Conflict application error.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
