package store

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist or is not
	// owned by the calling user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation is attempted against
	// an entity whose state does not permit it, e.g. approving a schedule
	// that is no longer queued.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation is returned when input is rejected before any state
	// is mutated.
	ErrValidation = errors.New("invalid input")
)
