package dmart

import "fmt"

// Error is the structured error payload returned by the dmart API.
type Error struct {
	Type    string           `json:"type"`
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Info    []map[string]any `json:"info,omitempty"`
}

// Error types produced locally by the client. Any other Type value comes
// straight from the backend's error payload (e.g. "validation", "jwtauth").
const (
	// ErrTypeAuth marks an authenticated operation attempted without a
	// token. Raised before any network call is made.
	ErrTypeAuth = "login"

	// ErrTypeConnection marks a failed login handshake: bad URL, bad
	// credentials, or a login response without records.
	ErrTypeConnection = "connection"

	// ErrTypeTransport marks a request that never produced a usable
	// response: the call failed outright or the body was not JSON.
	ErrTypeTransport = "transport"
)

// codeNotAuthenticated is the error code the backend uses for missing
// authentication; the client mirrors it for locally raised auth errors.
const codeNotAuthenticated = 10

// APIError is returned whenever a call cannot be completed as a typed
// success. It carries the HTTP status code (0 when the request never
// reached the server) and the structured [Error].
type APIError struct {
	StatusCode int
	Err        Error
	cause      error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("dmart: %s (%d): %s: %v", e.Err.Type, e.StatusCode, e.Err.Message, e.cause)
	}
	return fmt.Sprintf("dmart: %s (%d): %s", e.Err.Type, e.StatusCode, e.Err.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// newAPIError builds an APIError for a locally detected failure.
func newAPIError(status int, errType string, code int, message string, cause error) *APIError {
	return &APIError{
		StatusCode: status,
		Err:        Error{Type: errType, Code: code, Message: message},
		cause:      cause,
	}
}

// errNotAuthenticated is the error for operations attempted before Connect
// (or after Disconnect). Mirrors the backend's own 401 payload.
func errNotAuthenticated() *APIError {
	return newAPIError(401, ErrTypeAuth, codeNotAuthenticated, "not authenticated dmart user", nil)
}
