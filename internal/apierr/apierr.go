// Package apierr defines the API error taxonomy shared by services and handlers.
//
// Every client-facing failure maps to exactly one HTTP status and one
// {"errors": {field: [messages]}} body. Anything that is not an *Error is
// treated by the handlers as an internal server error.
package apierr

import (
	"net/http"
	"strings"
)

// Error is a request-local API error with a deterministic HTTP mapping.
type Error struct {
	Status int
	Fields map[string][]string
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, ", "))
	}
	return strings.Join(parts, "; ")
}

// New creates an error with a single field and message.
func New(status int, field, message string) *Error {
	return &Error{
		Status: status,
		Fields: map[string][]string{field: {message}},
	}
}

// Validation creates a 400 error carrying the collected field violations.
func Validation(fields map[string][]string) *Error {
	return &Error{Status: http.StatusBadRequest, Fields: fields}
}

// Conflict creates a 400 error for a duplicate resource, keyed by field.
func Conflict(field, message string) *Error {
	return New(http.StatusBadRequest, field, message)
}

// Unauthorized creates the 401 error used by the auth guard.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "message", "unauthorized")
}

// NotFound creates a 404 error with the given message.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, "message", message)
}
