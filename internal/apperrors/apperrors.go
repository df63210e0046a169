// Package apperrors holds the error kinds shared by repositories, services
// and the HTTP layer, and the table that maps each kind to a status code.
package apperrors

import (
	"errors"
	"net/http"
)

// Error kinds.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is an error of a known kind carrying a message safe to show clients.
type Error struct {
	Kind    error
	Message string
}

// New returns an Error of the given kind.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var statusTable = []struct {
	kind   error
	status int
}{
	{ErrValidation, http.StatusBadRequest},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrNotFound, http.StatusNotFound},
	{ErrConflict, http.StatusConflict},
}

// StatusCode returns the HTTP status for err. Errors of unknown kind map to 500.
func StatusCode(err error) int {
	for _, row := range statusTable {
		if errors.Is(err, row.kind) {
			return row.status
		}
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message of err, or "" when err has none.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
