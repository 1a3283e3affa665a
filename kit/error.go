package kit

import "fmt"

// Error is the structured failure a kit implementation returns from a
// delegate call. Code is the machine-readable identifier surfaced in error
// envelopes; Cause carries the underlying failure for unwrapping.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// NewError builds an Error without an underlying cause.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError builds an Error around an underlying cause.
func WrapError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("kit: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("kit: %s: %s", e.Code, e.Message)
}

// ErrorCode returns the machine-readable code.
func (e *Error) ErrorCode() string {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Cause
}
