package webutil

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	msgBadRequest         = "Bad Request"
	msgUnauthorized       = "Unauthorized"
	msgNotFound           = "Resource not found"
	msgInternalServer     = "Internal Server Error"
	msgServiceUnavailable = "Service Unavailable"
)

// HTTPError pairs an HTTP status code with a user-facing message, optionally
// wrapping the underlying cause for server-side diagnostics.
type HTTPError struct {
	cause   error
	Code    int
	Message string
}

func (he HTTPError) Error() string {
	return he.Message
}

// Unwrap exposes the cause for errors.Is and errors.As.
func (he HTTPError) Unwrap() error {
	return he.cause
}

func newHTTPError(code int, message, fallback string, cause error) *HTTPError {
	if message == "" {
		message = fallback
	}
	if cause == nil {
		cause = errors.New(message)
	}
	return &HTTPError{cause: cause, Code: code, Message: message}
}

func ErrBadRequest(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, msgBadRequest, nil)
}

func ErrBadRequestWrap(message string, cause error) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, msgBadRequest, cause)
}

func ErrUnauthorized(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message, msgUnauthorized, nil)
}

func ErrNotFound(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, msgNotFound, nil)
}

func ErrNotFoundWrap(message string, cause error) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, msgNotFound, cause)
}

func ErrServiceUnavailable(message string) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message, msgServiceUnavailable, nil)
}

func ErrInternalServer(message string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message, msgInternalServer, nil)
}

func ErrInternalServerWrap(message string, cause error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, msgInternalServer, msgInternalServer,
		fmt.Errorf("%s: %w", message, cause))
}
