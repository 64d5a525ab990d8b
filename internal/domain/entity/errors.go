package entity

import "errors"

// Error kinds surfaced by the domain and the use cases. Concrete failures wrap
// one of these so transport adapters can classify them with errors.Is.
var (
	// ErrInvalidValue is returned for caller-correctable input such as a
	// malformed email or a name outside the allowed length.
	ErrInvalidValue = errors.New("invalid value")
	// ErrAlreadyExists is returned when a user with the same email is stored.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrNotFound is returned when no user matches the given id.
	ErrNotFound = errors.New("user not found")
	// ErrNoOpTransition is returned when a mutation would not change state.
	ErrNoOpTransition = errors.New("no-op transition")
)
