package apperrors

import (
	"errors"
	"net/http"
)

// Error is an application error carrying the HTTP status it should map to and
// a message safe to show to the client. The wrapped error, if any, is for
// logging only and never serialized.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports missing or malformed input.
func Validation(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

// Conflict reports a uniqueness violation. The original API surfaces these as
// 400, not 409.
func Conflict(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

// Unauthorized reports a missing, invalid or expired credential.
func Unauthorized(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message}
}

// InvalidCredentials reports a failed password login. The same message is
// returned whether the email or the password was wrong, so a caller cannot
// tell which part failed.
func InvalidCredentials() *Error {
	return &Error{Code: http.StatusBadRequest, Message: "Invalid credentials"}
}

// OAuthFailed reports a provider-side verification failure.
func OAuthFailed(err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: "Google authentication failed", Err: err}
}

// Forbidden reports a role or ownership check failure.
func Forbidden(message string) *Error {
	return &Error{Code: http.StatusForbidden, Message: message}
}

// NotFound reports a missing record.
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

// Internal wraps an unexpected store or runtime failure.
func Internal(err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: "Server error", Err: err}
}

// StatusOf returns the HTTP status for err, defaulting to 500 for anything
// that is not an application error.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message for err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Server error"
}
