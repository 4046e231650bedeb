package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain error carrying the HTTP status the handler should answer with.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// AuthError is the structured authorization failure the login path answers
// with: a short reason, a description and an application error code.
type AuthError struct {
	Reason      string
	Description string
	ErrorCode   int
}

func (e *AuthError) Error() string {
	return e.Description
}

// StatusOf extracts the HTTP status from err, defaulting to 500.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
