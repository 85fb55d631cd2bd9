package core

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for comparison using errors.Is()
// These are generic errors that can be wrapped with additional context
var (
	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMissingConfiguration = errors.New("missing required configuration")

	// Authentication errors
	ErrMissingToken       = errors.New("bearer token required")
	ErrMissingCredentials = errors.New("consumer key and secret required")

	// Operation errors
	ErrTimeout            = errors.New("operation timeout")
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded")

	// HTTP/Network errors
	ErrConnectionFailed = errors.New("connection failed")
	ErrRequestFailed    = errors.New("request failed")
	ErrDecodeFailed     = errors.New("response decode failed")
)

// APIError is returned when a backend answers with a non-success HTTP
// status. The raw response body is preserved so callers can surface
// backend-provided error messages.
type APIError struct {
	Backend    string // "legacy" or "woocommerce"
	Op         string // logical operation name, e.g. "cart.add"
	StatusCode int
	Body       string
}

// Error returns the string representation of the error
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Backend, e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Backend, e.Op, e.StatusCode)
}

// ClientError provides structured error information with context.
// It implements the error interface and supports error wrapping.
type ClientError struct {
	Op      string // Operation that failed (e.g., "legacy.ListProducts")
	Backend string // Backend involved ("legacy", "woocommerce")
	Err     error  // Underlying error for wrapping
}

// Error returns the string representation of the error
func (e *ClientError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError
func NewClientError(op, backend string, err error) *ClientError {
	return &ClientError{
		Op:      op,
		Backend: backend,
		Err:     err,
	}
}

// IsRetryable checks if an error is retryable.
// Retryable errors are transient network or availability issues.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrConnectionFailed) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}
	return false
}

// IsStatus checks if an error is an APIError with the given HTTP status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return IsStatus(err, 404)
}

// IsConfigurationError checks if an error is configuration-related
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrMissingConfiguration)
}
