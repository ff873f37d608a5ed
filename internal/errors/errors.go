// Package errors defines custom error types for better error handling and debugging.
// AppError provides context-aware error reporting with type classification.
package errors

import (
	"errors"
	"fmt"
)

// AppError represents errors that occur while serving catalog requests
type AppError struct {
	Type    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeInvalidInput         = "INVALID_INPUT"
	ErrorTypeTMDBFailure          = "TMDB_FAILURE"
	ErrorTypeDatabaseFailure      = "DATABASE_FAILURE"
	ErrorTypeCacheFailure         = "CACHE_FAILURE"
)

// New creates a new AppError
func New(errorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *AppError {
	return New(ErrorTypeConfigurationInvalid, message, cause)
}

// NewInvalidInputError creates a caller-input validation error
func NewInvalidInputError(message string) *AppError {
	return New(ErrorTypeInvalidInput, message, nil)
}

// NewTMDBError creates a TMDB-related error
func NewTMDBError(message string, cause error) *AppError {
	return New(ErrorTypeTMDBFailure, message, cause)
}

// NewDatabaseError creates a relational-store error
func NewDatabaseError(message string, cause error) *AppError {
	return New(ErrorTypeDatabaseFailure, message, cause)
}

// NewCacheError creates a cache-access error
func NewCacheError(message string, cause error) *AppError {
	return New(ErrorTypeCacheFailure, message, cause)
}

// IsInvalidInput reports whether err is an input-validation failure.
// Handlers use it to map caller errors to 400 responses.
func IsInvalidInput(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeInvalidInput
	}
	return false
}
