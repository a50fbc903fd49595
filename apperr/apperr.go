package apperr

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidQuality = "INVALID_QUALITY"
	CodeValidation     = "VALIDATION_ERROR"
	CodePersistence    = "PERSISTENCE_FAILURE"
)

// Error is an engine error with a stable code callers can branch on.
// NOT_FOUND and INVALID_QUALITY signal a contract violation between the
// caller and the engine; PERSISTENCE_FAILURE means the durable store failed
// while the in-memory state stayed usable.
type Error struct {
	Code    string // stable error code
	Message string // human-readable message
	Err     error  // wrapped underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFound reports that no card exists for identity.
func NewNotFound(identity string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("card not found: %q", identity),
	}
}

// NewInvalidQuality reports a grade outside the four defined values.
func NewInvalidQuality(quality int) *Error {
	return &Error{
		Code:    CodeInvalidQuality,
		Message: fmt.Sprintf("quality grade out of range: %d", quality),
	}
}

// NewValidation reports an invalid argument to an engine operation.
func NewValidation(field, reason string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewPersistence wraps a durable-store failure for op.
func NewPersistence(op string, err error) *Error {
	return &Error{
		Code:    CodePersistence,
		Message: fmt.Sprintf("persistence failed during %s", op),
		Err:     err,
	}
}

// HasCode reports whether err is (or wraps) an engine error with code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidQuality reports whether err carries CodeInvalidQuality.
func IsInvalidQuality(err error) bool { return HasCode(err, CodeInvalidQuality) }

// IsPersistence reports whether err carries CodePersistence.
func IsPersistence(err error) bool { return HasCode(err, CodePersistence) }
