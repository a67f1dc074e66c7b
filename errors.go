package moltbook

import (
	"errors"
	"fmt"
)

var (
	// ErrRequest covers transport failures (connection refused,
	// timeout, DNS) and responses that are not valid JSON.
	ErrRequest = errors.New("moltbook: request failed")

	// ErrAuthentication is returned on HTTP 401, regardless of body.
	ErrAuthentication = errors.New("moltbook: invalid or missing API key")

	// ErrRateLimit is returned on HTTP 429. The client never retries;
	// backoff is the caller's decision.
	ErrRateLimit = errors.New("moltbook: rate limit exceeded")

	// ErrAPI matches any APIError via errors.Is.
	ErrAPI = errors.New("moltbook: api error")

	// ErrInvalidInput is returned when a request body fails client-side
	// validation, before anything is sent.
	ErrInvalidInput = errors.New("moltbook: invalid input")
)

// APIError is returned when the service answered with success=false.
// Message carries the service-provided error string.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("moltbook: api returned status %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return errors.Is(target, ErrAPI)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

func NewAPIError(message string, statusCode int) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: statusCode,
	}
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
