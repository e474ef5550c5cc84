package api

import (
	"errors"
	"fmt"
)

// Response bodies embedded in errors are capped at this many characters.
const maxErrorBodyLen = 500

const truncationSuffix = "... [truncated]"

// truncateBody caps a response body so error payloads stay bounded.
func truncateBody(body string) string {
	if len(body) <= maxErrorBodyLen {
		return body
	}
	return body[:maxErrorBodyLen] + truncationSuffix
}

// ConnectivityError is a connection or timeout failure that survived the
// whole retry budget. It wraps the failure from the final attempt.
type ConnectivityError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("failed to connect to %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// AuthenticationError is an HTTP 401 response.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "authentication required: provide a valid auth token"
}

// AuthorizationError is an HTTP 403 response.
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string {
	return "access denied: insufficient permissions for this resource"
}

// RequestError is any other HTTP >=400 response. Body is truncated to
// maxErrorBodyLen characters.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("API request failed (status %d): %s", e.StatusCode, e.Body)
}

// BatchError wraps the classified error from the batch that aborted a bulk
// write. Batch is 1-based.
type BatchError struct {
	Batch int
	Total int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("failed at batch %d/%d: %v", e.Batch, e.Total, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// IsConnectivityError checks if the error is a connectivity error.
func IsConnectivityError(err error) bool {
	var e *ConnectivityError
	return errors.As(err, &e)
}

// IsAuthenticationError checks if the error is a 401 authentication error.
func IsAuthenticationError(err error) bool {
	var e *AuthenticationError
	return errors.As(err, &e)
}

// IsAuthorizationError checks if the error is a 403 authorization error.
func IsAuthorizationError(err error) bool {
	var e *AuthorizationError
	return errors.As(err, &e)
}

// StatusCode extracts the HTTP status code buried in err, unwrapping batch
// context if present. Returns 0 when no status applies (e.g. connectivity).
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	if errors.As(err, new(*AuthenticationError)) {
		return 401
	}
	if errors.As(err, new(*AuthorizationError)) {
		return 403
	}
	return 0
}
