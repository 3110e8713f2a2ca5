// Package common defines shared sentinel errors used across client and
// server layers of linkkeeper. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorValidation    = errors.New("validation error")
	ErrorQuotaExceeded = errors.New("quota exceeded")

	// Login errors. A wrong password and an unknown email both map here so a
	// caller cannot tell which part of the credentials was wrong.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
