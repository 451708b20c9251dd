package errors

import (
	"net/http"

	"arenago/internal/errors"
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
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
	// Validation errors are checked first and short-circuit before any write.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid or missing input",
		"",
	)

	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"Action must be approve or reject",
		"",
	)

	// Authentication / authorization errors.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Identity errors.
	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// Center errors. Write failures on an unknown center surface as 400,
	// matching the verbatim pass-through of the approval endpoint.
	ErrCenterNotFound = NewBaseError(
		http.StatusBadRequest,
		"CENTER_NOT_FOUND",
		"Center not found",
		"",
	)

	// General errors.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// PersistenceError represents a backing-store read/write failure. The
// store's message is surfaced verbatim to the caller with a 400 and the
// failing stage is recorded so multi-stage operations stay distinguishable.
// No retries are performed anywhere.
type PersistenceError struct {
	err   error
	stage string
}

// NewPersistenceError creates a persistence error tagged with the failing stage.
func NewPersistenceError(err error, stage string) AppError {
	return &PersistenceError{
		err:   err,
		stage: stage,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "persistence failed at "+e.stage).Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the store's error message verbatim
func (e *PersistenceError) Message() string {
	return e.err.Error()
}

// Details returns the stage at which the operation failed
func (e *PersistenceError) Details() string {
	return e.stage
}
