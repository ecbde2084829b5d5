package api

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError means no usable response was received: connection refused,
// DNS failure, or the request timing out. The server never saw or never
// answered the request.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the server answered with a non-2xx status. Message carries
// the server-supplied reason when one was decodable, decoded once at the
// client boundary rather than probed ad hoc by every caller.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// ValidationError is raised client-side before any network call, e.g. for a
// missing required registration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ServerMessage extracts the server-supplied message from err, falling back
// to the given generic message. Stores use this to build their displayed
// error strings.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// apiEnvelope is the error/acknowledgment shape the API wraps failures in.
// Some endpoints report under "error", others under "message".
type apiEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e apiEnvelope) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
