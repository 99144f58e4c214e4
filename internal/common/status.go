package common

import (
	"fmt"
	"net/http"
	"strings"
)

// StatusError is a client-facing failure produced by validators and guards.
// It travels up to the terminal error translator, which writes Status and
// Message to the response. It is never persisted.
type StatusError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// NewStatusError builds a StatusError.
func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

// BadRequest returns a 400 StatusError.
func BadRequest(message string) *StatusError {
	return NewStatusError(http.StatusBadRequest, message)
}

// Unprocessable returns a 422 StatusError.
func Unprocessable(message string) *StatusError {
	return NewStatusError(http.StatusUnprocessableEntity, message)
}

// Unauthorized returns the 401 StatusError used for every auth failure.
func Unauthorized() *StatusError {
	return NewStatusError(http.StatusUnauthorized, "Unauthorized")
}

// QuoteList renders field names as 'a', 'b', 'c' for error messages.
func QuoteList(fields []string) string {
	return "'" + strings.Join(fields, "', '") + "'"
}
