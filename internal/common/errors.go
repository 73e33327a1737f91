// Package common defines sentinel errors shared by the client and server
// layers of Poken. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Signup: the requested user id is taken.
	ErrorDuplicateUserID = errors.New("user id already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
