package nivesh

import "errors"

// Sentinel errors shared across the store, auth, and backup layers.
// Callers should use errors.Is to match these values; functions wrap them
// with %w and a human-readable context.
var (
	// ErrNotFound is returned when operating on an id absent from a collection.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for a missing required field, a value out of
	// range, or a duplicate username/email.
	ErrValidation = errors.New("validation error")

	// ErrAuth is returned when no matching user exists, a credential is
	// wrong, or no credential was supplied.
	ErrAuth = errors.New("authentication failed")

	// ErrVersionMismatch is returned when importing a backup envelope written
	// by an incompatible codec version.
	ErrVersionMismatch = errors.New("version mismatch")
)
