package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCodeStoreFailure  ErrorCode = "STORE_FAILURE"
)

// Error represents a domain-level error. Message is safe for clients;
// Err carries the underlying store diagnostic for logging and the
// operator-facing 500 body.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrTaskNotFound      = NewError(ErrCodeNotFound, "Task not found")
	ErrInvalidTaskID     = NewError(ErrCodeBadRequest, "Invalid task ID")
	ErrTaskFieldsMissing = NewError(ErrCodeBadRequest, "Title and category are required")
	ErrTaskUpdateMissing = NewError(ErrCodeBadRequest, "Title and description are required")
	ErrUserFieldsMissing = NewError(ErrCodeBadRequest, "Missing required fields")
	ErrUserExists        = NewError(ErrCodeAlreadyExists, "User already exists")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
