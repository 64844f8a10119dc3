// Package errors carries HTTP-facing errors from delivery layers to the
// response writer without leaking internal error text to clients.
package errors

import "fmt"

// HTTPError pairs a status code with a client-safe message.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}
