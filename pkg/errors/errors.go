package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Input classification errors
	ErrInputKindMismatch ErrorCode = "INPUT_KIND_MISMATCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Parser errors
	ErrParse ErrorCode = "PARSE"

	// Source extraction errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"

	// File processing errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// ResinError represents a structured error with code and details
type ResinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ResinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ResinError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ResinError) Is(target error) bool {
	var targetErr *ResinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ResinError with the given code and message
func New(code ErrorCode, message string) *ResinError {
	return &ResinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ResinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ResinError {
	return &ResinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ResinError
func Wrap(err error, code ErrorCode, message string) *ResinError {
	if err == nil {
		return nil
	}
	return &ResinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ResinError {
	if err == nil {
		return nil
	}
	return &ResinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ResinError) WithDetail(key string, value interface{}) *ResinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var resinErr *ResinError
	if errors.As(err, &resinErr) {
		return resinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ResinError
func GetErrorCode(err error) ErrorCode {
	var resinErr *ResinError
	if errors.As(err, &resinErr) {
		return resinErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ResinError
func GetErrorDetails(err error) map[string]interface{} {
	var resinErr *ResinError
	if errors.As(err, &resinErr) {
		return resinErr.Details
	}
	return nil
}
