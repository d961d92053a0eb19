package apperrors

import (
	"errors"
	"fmt"
)

// Code classifies an application error.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeMalformed  Code = "MALFORMED_REQUEST"
	CodeTransport  Code = "TRANSPORT_ERROR"
	CodeRelay      Code = "RELAY_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// AppError is an error carrying a classification code. The wrapped cause
// is intended for server-side logs only and must never be echoed to a
// client.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a cause.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsRelay reports whether the mail relay rejected or failed the dispatch.
func IsRelay(err error) bool { return Is(err, CodeRelay) }

// IsTransport reports whether the submission failed to reach the server
// or was answered with a non-2xx status.
func IsTransport(err error) bool { return Is(err, CodeTransport) }

// IsValidation reports whether the error is a field-validation failure.
func IsValidation(err error) bool { return Is(err, CodeValidation) }
