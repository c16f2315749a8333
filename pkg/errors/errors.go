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

	// Section editing errors
	ErrMalformedMarkers ErrorCode = "MALFORMED_MARKERS"
	ErrUnknownSection   ErrorCode = "UNKNOWN_SECTION"

	// Persistence errors
	ErrPersistFailure ErrorCode = "PERSIST_FAILURE"
	ErrTemplateRead   ErrorCode = "TEMPLATE_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Step errors
	ErrStepFailed ErrorCode = "STEP_FAILED"
)

// WpconfError represents a structured error with code and details
type WpconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WpconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WpconfError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a WpconfError with the same code
func (e *WpconfError) Is(target error) bool {
	var targetErr *WpconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WpconfError with the given code and message
func New(code ErrorCode, message string) *WpconfError {
	return &WpconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WpconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WpconfError {
	return &WpconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WpconfError
func Wrap(err error, code ErrorCode, message string) *WpconfError {
	if err == nil {
		return nil
	}
	return &WpconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WpconfError {
	if err == nil {
		return nil
	}
	return &WpconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WpconfError) WithDetail(key string, value interface{}) *WpconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *WpconfError) WithDetails(details map[string]interface{}) *WpconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wErr *WpconfError
	if errors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WpconfError
func GetErrorCode(err error) ErrorCode {
	var wErr *WpconfError
	if errors.As(err, &wErr) {
		return wErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WpconfError
func GetErrorDetails(err error) map[string]interface{} {
	var wErr *WpconfError
	if errors.As(err, &wErr) {
		return wErr.Details
	}
	return nil
}
