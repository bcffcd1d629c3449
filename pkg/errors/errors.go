// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

// Error codes surfaced by the meal-plan generation engine
const (
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"

	// Generation errors
	CodeNoTemplateAvailable ErrorCode = "NO_TEMPLATE_AVAILABLE"
	CodeFoodNotFound        ErrorCode = "FOOD_NOT_FOUND"

	// Collaborator errors; these are recovered locally and logged,
	// never surfaced to the caller of GenerateMealPlan
	CodePreferenceLoadFailed    ErrorCode = "PREFERENCE_LOAD_FAILED"
	CodeHealthMappingLoadFailed ErrorCode = "HEALTH_MAPPING_LOAD_FAILED"
	CodeLogWriteFailed          ErrorCode = "LOG_WRITE_FAILED"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status code a surrounding service layer
// should translate this error to
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNoTemplateAvailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewNoTemplateAvailableError indicates every fallback tier was exhausted
// for a meal slot. A partial day is not a valid plan, so this aborts the
// whole generation.
func NewNoTemplateAvailableError(slot string, diet string) *AppError {
	return NewAppError(
		CodeNoTemplateAvailable,
		"No meal template available",
		fmt.Sprintf("No template could be selected for slot %s with diet %s", slot, diet),
	).WithMetadata("slot", slot).WithMetadata("diet", diet)
}

// NewFoodNotFoundError indicates a template referenced a food missing from
// the catalog, which is a data inconsistency rather than a runtime condition
func NewFoodNotFoundError(foodKey string, cause error) *AppError {
	return NewAppError(
		CodeFoodNotFound,
		"Food not found in catalog",
		fmt.Sprintf("Food %q is referenced by a template but missing from the catalog", foodKey),
	).WithMetadata("food_key", foodKey).WithCause(cause)
}

// NewPreferenceLoadError wraps a failed preference read
func NewPreferenceLoadError(cause error) *AppError {
	return NewAppError(
		CodePreferenceLoadFailed,
		"Failed to load user preferences",
		"",
	).WithCause(cause)
}

// NewHealthMappingLoadError wraps a failed food-health mapping read
func NewHealthMappingLoadError(cause error) *AppError {
	return NewAppError(
		CodeHealthMappingLoadFailed,
		"Failed to load food health mappings",
		"",
	).WithCause(cause)
}

// NewLogWriteError wraps a failed generation-log write
func NewLogWriteError(cause error) *AppError {
	return NewAppError(
		CodeLogWriteFailed,
		"Failed to record generation session",
		"",
	).WithCause(cause)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}
