package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	// ErrCodeInvalidInput is an unrecognized project type
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeValidation is a request that fails basic schema validation
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeStoreFailure  ErrorCode = "STORE_FAILURE"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
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

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidInput creates an INVALID_INPUT error
func InvalidInput(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// Validation creates a VALIDATION_ERROR error
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// StoreFailure wraps a persistence error
func StoreFailure(message string, err error) *AppError {
	return Wrap(ErrCodeStoreFailure, message, err)
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrCodeInternalError when there is none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// IsInvalidInput checks if error is InvalidInput
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrCodeInvalidInput)
}

// IsValidation checks if error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsStoreFailure checks if error is StoreFailure
func IsStoreFailure(err error) bool {
	return hasCode(err, ErrCodeStoreFailure)
}

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
