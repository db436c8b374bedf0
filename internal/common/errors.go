// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
)

// AppError represents a standard structure for errors surfaced to the UI layer.
type AppError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("AppError: Code=%s, Message=%s", e.Code, e.Message)
}

func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// WithDetails returns a copy carrying extra detail payload. The sentinel
// values below are shared, so they must not be mutated in place.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

var (
	ErrInvalidInput   = NewAppError("INVALID_INPUT", "The provided input is invalid.")
	ErrUnauthorized   = NewAppError("UNAUTHORIZED", "Authentication is required and has failed or has not yet been provided.")
	ErrForbidden      = NewAppError("FORBIDDEN", "You do not have permission to access this resource.")
	ErrNotFound       = NewAppError("NOT_FOUND", "The requested resource could not be found.")
	ErrConflict       = NewAppError("CONFLICT", "A conflict occurred with the current state of the resource.")
	ErrProviderDenied = NewAppError("PROVIDER_DENIED", "The backend provider rejected the request.")
	ErrInternal       = NewAppError("INTERNAL_ERROR", "An unexpected error occurred.")
	ErrTimeout        = NewAppError("TIMEOUT", "The operation did not complete in time.")
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NewValidationError(details interface{}) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "Input validation failed.",
		Details: details,
	}
}
