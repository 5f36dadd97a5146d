package errors

import "net/http"

// HTTPError carries an HTTP status code plus a client-safe message.
// Internal diagnostic detail never travels through this type.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common HTTP errors used across delivery layers.
var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
