package errors

import (
	"fmt"
)

type ErrorType string

const (
	ErrorTypeExternalTool  ErrorType = "EXTERNAL_TOOL"
	ErrorTypeMalformedPath ErrorType = "MALFORMED_PATH"
	ErrorTypeValidation    ErrorType = "VALIDATION"
)

// ExitFailure is the process exit code for every error type.
const ExitFailure = 1

type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details any       `json:"details,omitempty"`
	Err     error     `json:"-"`
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

// Is matches any *Error of the same Type, so errors.Is(err, &Error{Type: t})
// works as a type check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// ExternalTool reports that the git invocation could not run or failed.
func ExternalTool(message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeExternalTool,
		Message: message,
		Code:    ExitFailure,
		Err:     cause,
	}
}

// MalformedPath reports a tracked path containing an empty segment.
func MalformedPath(path string) *Error {
	return &Error{
		Type:    ErrorTypeMalformedPath,
		Message: fmt.Sprintf("malformed path %q: empty path segment", path),
		Code:    ExitFailure,
		Details: path,
	}
}

func ValidationError(message string, details any) *Error {
	return &Error{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    ExitFailure,
		Details: details,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrExternalTool  = &Error{Type: ErrorTypeExternalTool}
	ErrMalformedPath = &Error{Type: ErrorTypeMalformedPath}
)
