package errors

import (
	"net/http"

	"alvaqth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on error code so copies made by WithDetails still satisfy errors.Is
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Geolocation errors
	ErrCapabilityUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOLOCATION_UNAVAILABLE",
		"Geolocation is not supported on this device",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"GEOLOCATION_PERMISSION_DENIED",
		"Location permission denied",
		"",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOLOCATION_POSITION_UNAVAILABLE",
		"Current position is unavailable",
		"",
	)

	// Remote service errors
	ErrNetworkFailure = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_FAILURE",
		"Remote service request failed",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"City not found.",
		"",
	)

	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Opt-in wizard errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"Action not allowed in the current step",
		"",
	)

	ErrWizardClosed = NewBaseError(
		http.StatusConflict,
		"WIZARD_CLOSED",
		"Opt-in wizard is not open",
		"",
	)

	ErrOptInFailed = NewBaseError(
		http.StatusBadGateway,
		"OPT_IN_FAILED",
		"Opt-in failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)
