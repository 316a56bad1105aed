package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for callers that need to pick a
// user-facing response (the HTTP layer maps kinds to status codes).
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindPermission Kind = "PERMISSION"
	KindNotFound   Kind = "NOT_FOUND"
	// KindStorage covers persistence faults (connection loss, unexpected
	// constraint violations) as opposed to business-rule failures.
	KindStorage Kind = "STORAGE"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Permission(format string, args ...any) *Error {
	return &Error{Kind: KindPermission, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindStorage when err is not an *Error.
// Unknown errors reaching the edge are treated as infrastructure faults.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
