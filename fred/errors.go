package fred

import (
	"errors"
	"fmt"
)

// Common errors returned by the FRED client.
var (
	// ErrMissingAPIKey indicates no usable API key could be located.
	ErrMissingAPIKey = errors.New("cannot locate a FRED API key")

	// ErrKeyFileNotFound indicates the configured key file does not exist.
	ErrKeyFileNotFound = errors.New("API key file not found")

	// ErrInvalidArgument indicates a required argument was not supplied.
	ErrInvalidArgument = errors.New("invalid argument")
)

// APIError represents an error response from the FRED API.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("fred API error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fred API error: status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates an unknown resource id
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest checks if the error indicates a malformed request or a
// rejected API key. FRED reports both with status 400.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates too many requests
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
