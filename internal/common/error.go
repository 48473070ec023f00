package common

import "errors"

// Sentinel errors shared by client and server layers. Callers should use
// errors.Is to match these values.
var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPersistence marks a remote write rejection that the caller is
	// expected to surface to the user.
	ErrPersistence = errors.New("persistence error")

	// Validation errors.
	ErrInvalidColor  = errors.New("invalid letter color")
	ErrEmptyUsername = errors.New("empty username")
	ErrEmptyContent  = errors.New("empty letter content")
)
