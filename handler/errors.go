package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with the status code and the message shown to the
// client. The message is returned verbatim, so it must not leak internals.
type HTTPError struct {
	Code    int
	Message string
	// Err is the underlying cause, logged but never rendered.
	Err error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e HTTPError) Unwrap() error { return e.Err }

// Wrap returns a copy of e carrying cause.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.Err = cause
	return e
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrInvalidRequestBody  = HTTPError{Code: http.StatusBadRequest, Message: "Invalid request body."}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Not found."}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error."}
)
