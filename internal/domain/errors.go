package domain

import "errors"

var (
	// ErrNotFound marks a missing user, coffee or order. Wrap it with
	// the entity and id so callers can surface which one is gone.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks a request rejected before any mutation.
	ErrInvalidArgument = errors.New("invalid argument")
)
