package errors

import (
	"fmt"
	"net/http"

	"socialgate/internal/errors"
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
	// ErrValidation covers missing or mismatched required request fields.
	// Requests failing validation are rejected before any network call.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request",
		"",
	)

	// ErrHandshakeExpired is returned when a three-legged callback arrives
	// with no pending secret for its client id (expired or already consumed).
	ErrHandshakeExpired = NewBaseError(
		http.StatusUnauthorized,
		"HANDSHAKE_EXPIRED",
		"handshake expired",
		"",
	)

	// ErrStoreUnavailable signals that the identity store or account
	// directory could not serve a required read or write.
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"identity store unavailable",
		"",
	)

	// ErrTokenIssue marks a failure to mint a session token after the
	// identity was already resolved, distinct from earlier stages.
	ErrTokenIssue = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"failed to issue session token",
		"",
	)

	ErrUnknownProvider = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PROVIDER",
		"unknown provider",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// Provider auth stages.
const (
	StageTokenExchange = "token_exchange"
	StageProfileFetch  = "profile_fetch"
)

// ProviderAuthError reports a failed provider round trip: network failure,
// non-200 status, or an unparsable response body. ProviderMessage carries the
// provider-supplied human-readable reason when one was present; it is the
// only part ever shown to callers.
type ProviderAuthError struct {
	Provider        string
	Stage           string // StageTokenExchange or StageProfileFetch
	Detail          string
	ProviderMessage string
	Err             error
}

// Error implements the error interface
func (e *ProviderAuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s %s failed: %s: %v", e.Provider, e.Stage, e.Detail, e.Err)
	}

	return fmt.Sprintf("provider %s %s failed: %s", e.Provider, e.Stage, e.Detail)
}

// Unwrap returns the underlying cause.
func (e *ProviderAuthError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *ProviderAuthError) HTTPCode() int {
	return http.StatusUnauthorized
}

// ErrorCode returns the business error code
func (e *ProviderAuthError) ErrorCode() string {
	return "PROVIDER_AUTH_FAILED"
}

// Message returns the user-friendly error message
func (e *ProviderAuthError) Message() string {
	if e.ProviderMessage != "" {
		return e.ProviderMessage
	}

	return "provider authentication failed"
}

// Details returns detailed error information
func (e *ProviderAuthError) Details() string {
	return e.Detail
}
