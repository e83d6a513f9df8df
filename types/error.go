package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the tool.
type ErrorCode string

// CLI error codes
const (
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrInvalidConfig   ErrorCode = "INVALID_CONFIG"
	ErrReadSource      ErrorCode = "READ_SOURCE"
)

// Analysis error codes
const (
	ErrTokenization        ErrorCode = "TOKENIZATION"
	ErrUnsupportedLanguage ErrorCode = "UNSUPPORTED_LANGUAGE"
	ErrHistory             ErrorCode = "HISTORY"
)

// Error represents a structured error with code, message, and position metadata.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Line    int       `json:"line,omitempty"`
	Column  int       `json:"column,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithPosition records where in the source the error occurred.
func (e *Error) WithPosition(line, column int) *Error {
	e.Line = line
	e.Column = column
	return e
}

// GetErrorCode extracts the error code from an error chain.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return err != nil && GetErrorCode(err) == code
}

// IsTokenizationError reports whether err was raised by a tokenizer.
func IsTokenizationError(err error) bool {
	return IsErrorCode(err, ErrTokenization)
}

// NewTokenizationError creates a TOKENIZATION error.
func NewTokenizationError(message string) *Error {
	return NewError(ErrTokenization, message)
}

// NewMissingArgumentError creates a MISSING_ARGUMENT error.
func NewMissingArgumentError(name string) *Error {
	return NewError(ErrMissingArgument, fmt.Sprintf("missing required argument: %s", name))
}
