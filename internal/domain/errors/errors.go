// Package errors defines the closed set of domain error kinds used across
// every request path. Components raise the most specific kind they can
// determine; the response layer only ever sees these, never storage-engine
// or provider-specific failures.
package errors

import (
	"net/http"

	"preesh/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable error kind code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// ErrorCode returns the stable error kind code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Constructors for the closed kind set. The status mapping is fixed:
// NotFound 404, BadRequest 400, UnprocessableEntity 422, Unauthenticated 401,
// Forbidden 403, Unknown 500.

// NewNotFound reports that a referenced resource is absent.
func NewNotFound(msg string) *BaseError {
	return NewBaseError(http.StatusNotFound, "NOT_FOUND", msg)
}

// NewBadRequest reports a conflicting unique field or a malformed request,
// including an invalid identity assertion.
func NewBadRequest(msg string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "BAD_REQUEST", msg)
}

// NewUnprocessableEntity reports structurally invalid data rejected by the
// storage layer.
func NewUnprocessableEntity(msg string) *BaseError {
	return NewBaseError(http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", msg)
}

// NewUnauthenticated reports a missing credential.
func NewUnauthenticated(msg string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, "UNAUTHENTICATED", msg)
}

// NewForbidden reports an invalid or expired credential, or an ownership
// violation.
func NewForbidden(msg string) *BaseError {
	return NewBaseError(http.StatusForbidden, "FORBIDDEN", msg)
}

// NewUnknown reports an unanticipated failure. The message is deliberately
// generic; the underlying cause is logged server-side, never returned.
func NewUnknown(msg string) *BaseError {
	return NewBaseError(http.StatusInternalServerError, "UNKNOWN", msg)
}

// Predefined errors for failures with a fixed message.
var (
	// Authentication-related errors
	ErrAuthenticationRequired = NewUnauthenticated("Authentication required")
	ErrInvalidToken           = NewForbidden("Invalid token")
	ErrOwnershipViolation     = NewForbidden("You do not have permission to modify this beast")

	// Identity-provider errors. Both surface as 400 on the sign-in endpoint.
	ErrInvalidAssertion = NewBadRequest("Invalid Apple authentication")
	ErrExchangeFailed   = NewBadRequest("Apple authorization code exchange failed")

	// Storage fallback
	ErrUnexpectedDatabase = NewUnknown("An unexpected database error occurred")

	// General errors
	ErrBeastNotFound    = NewNotFound("Beast not found")
	ErrPreeshNotFound   = NewNotFound("Preesh not found")
	ErrResourceNotFound = NewNotFound("Resource not found")
	ErrEmptyUpdate      = NewBadRequest("At least one of gamerTag or email must be provided")
)

// FromError extracts an AppError from err's tree. The boolean is false when
// err carries no domain kind, in which case callers must treat it as Unknown.
func FromError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
