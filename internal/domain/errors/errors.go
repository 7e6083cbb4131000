// Package errors defines the closed set of application error kinds that can
// reach the HTTP error responder. Every failure a handler returns is either one
// of these or gets coerced to the generic internal error at the edge.
package errors

import (
	"net/http"

	"taskboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine-readable error code
	Message() string   // Safe, user-facing error message
	Details() string   // Detailed error information (optional, never serialized for 5xx)
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

// ErrorCode returns the machine-readable error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the safe, user-facing error message
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

// Authentication errors. The gate resolves every request to exactly one of
// these or to a valid token. Note that a missing and an expired token share
// ErrInvalidToken on purpose: the response must not reveal which token ids
// exist.
var (
	ErrEmptyAuth = NewBaseError(
		http.StatusUnauthorized,
		"EMPTY_AUTH",
		"missing Authorization header",
		"",
	)

	ErrMalformedAuth = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_AUTH",
		"malformed Authorization header",
		"",
	)

	ErrInvalidAuthType = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_AUTH_TYPE",
		"invalid Authorization type",
		"",
	)

	ErrMissingBearerToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_BEARER_TOKEN",
		"missing Bearer token",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired Bearer token",
		"",
	)
)

// Service errors.
var (
	ErrStorage = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_ERROR",
		"storage operation failed",
		"",
	)

	ErrInvariantViolation = NewBaseError(
		http.StatusInternalServerError,
		"INVARIANT_VIOLATION",
		"internal invariant violated",
		"",
	)

	ErrCardNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"card not found",
		"",
	)
)

// NewStorageError classifies err as an opaque storage failure. The cause is
// kept as detail for server-side logging; the response only ever carries the
// generic message.
func NewStorageError(err error, message string) AppError {
	return ErrStorage.WithDetails(message + ": " + err.Error())
}

// NewInvariantViolation reports a broken internal invariant, such as a status
// value outside the closed set.
func NewInvariantViolation(detail string) AppError {
	return ErrInvariantViolation.WithDetails(detail)
}

// General errors.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"route not found",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_SERVER_ERROR",
		"internal error",
		"",
	)
)
