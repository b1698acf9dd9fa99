// Package errors defines the domain error taxonomy. Every failure a
// handler can observe is one of these sentinels or a *ValidationError;
// the HTTP layer translates them into the response envelope in one place.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInternal       = errors.New("internal server error")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("resource not found")

	// Authentication failures.
	ErrTelegramAuth       = errors.New("telegram login data verification failed")
	ErrBotTokenMismatch   = errors.New("decrypted bot token does not match")
	ErrInvalidKeyMaterial = errors.New("decryption failed: invalid key material")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrExpiredToken       = errors.New("expired session token")
	ErrAdminRequired      = errors.New("admin privileges required")

	// Store failures.
	ErrUserNotFound       = errors.New("user not found")
	ErrBirthdayNotFound   = errors.New("birthday not found")
	ErrBirthdayNameExists = errors.New("user already has a birthday with this name")
	ErrNoBirthdays        = errors.New("there are no birthdays for this user")
)

// ValidationError is a rejected birthday payload. Field names the part of
// the payload that failed ("date", "name", "note").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err maps to a 404 at the API boundary.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrBirthdayNotFound) ||
		errors.Is(err, ErrNoBirthdays)
}

// IsConflict reports whether err is a uniqueness violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrBirthdayNameExists)
}

// IsUnauthorized reports whether err means the session is missing or bad.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
