// Package apperr defines the error type shared by all PSP packages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so that callers can react to the category
// without matching on individual error values.
type Kind string

const (
	// InvalidTransition marks a session operation invoked from the
	// wrong state. These are contract violations, not user mistakes.
	InvalidTransition Kind = "invalid_transition"

	// Validation marks malformed user input: bad dates, empty required
	// text, unknown defect type codes. Recoverable; nothing is mutated.
	Validation Kind = "validation"

	// Persistence marks an I/O failure while loading or saving a
	// project file. In-memory state is kept so the operation can be
	// retried.
	Persistence Kind = "persistence"
)

// Error is the concrete error type used across the application.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fmt returns a copy of the error with its message placeholders filled
// in. The original value is left untouched so it can stay a package
// level sentinel.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Kind:    e.Kind,
		Message: fmt.Sprintf(e.Message, args...),
		Err:     e.Err,
	}
}

// Wrap returns a copy of the error carrying an underlying cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Kind:    e.Kind,
		Message: e.Message,
		Err:     err,
	}
}

// IsKind reports whether err (or any error it wraps) is an *Error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}

	return false
}
