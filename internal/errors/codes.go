package errors

import (
	"fmt"
)

// ErrorCode represents a specific failure class for theme operations.
type ErrorCode string

const (
	// ErrCodeBackendUnavailable indicates the preference backend is unreachable.
	// Callers may retry; a fallback theme is always usable in the meantime.
	ErrCodeBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	// ErrCodeMissingField indicates a required request field is absent.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidTheme indicates the theme name is not in the catalog.
	ErrCodeInvalidTheme ErrorCode = "INVALID_THEME"
	// ErrCodeThemeNotFound indicates a preview lookup for an unknown theme.
	ErrCodeThemeNotFound ErrorCode = "THEME_NOT_FOUND"
	// ErrCodeCorruptRecord indicates a stored preference failed to deserialize.
	ErrCodeCorruptRecord ErrorCode = "CORRUPT_RECORD"
)

// ServiceError represents a structured error for theme service operations.
type ServiceError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// GetCode returns the error code.
func (e *ServiceError) GetCode() ErrorCode {
	return e.Code
}

// Convenience constructors for common error types.

// BackendUnavailable creates a backend unavailable error.
func BackendUnavailable(msg string) *ServiceError {
	return &ServiceError{Code: ErrCodeBackendUnavailable, Message: msg}
}

// MissingField creates a missing field error.
func MissingField(field string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("missing required field: %s", field),
	}
}

// InvalidTheme creates an invalid theme error.
func InvalidTheme(themeName string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInvalidTheme,
		Message: fmt.Sprintf("invalid theme name: %s", themeName),
	}
}

// ThemeNotFound creates a theme not found error.
func ThemeNotFound(themeName string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeThemeNotFound,
		Message: fmt.Sprintf("theme not found: %s", themeName),
	}
}

// CorruptRecord creates a corrupt record error.
func CorruptRecord(userID string, cause error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeCorruptRecord,
		Message: fmt.Sprintf("stored theme preference for user %s is corrupt", userID),
		Cause:   cause,
	}
}

// Wrap wraps an existing error with a service error code.
func Wrap(cause error, code ErrorCode, msg string) *ServiceError {
	return &ServiceError{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error is of a specific code.
func IsCode(err error, code ErrorCode) bool {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr.Code == code
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not a ServiceError.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr.Code
	}
	return defaultCode
}
