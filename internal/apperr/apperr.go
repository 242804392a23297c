// Package apperr carries an HTTP status alongside domain errors so the
// handlers can answer with the right code without knowing where the error
// came from.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is a domain error annotated with an HTTP status code.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
	Err     error
}

// Sentinels for errors.Is checks. Matching is by status only.
var (
	ErrNotFound   = &Error{Status: http.StatusNotFound}
	ErrBadRequest = &Error{Status: http.StatusBadRequest}
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}

// NotFound returns a 404 error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// BadRequest returns a 400 error listing the offending fields.
func BadRequest(message string, fields ...FieldError) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: message,
		Fields:  fields,
	}
}

// StatusOf returns the status carried by err, or 500 when err is not an *Error.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
