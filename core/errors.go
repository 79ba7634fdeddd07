package core

import "errors"

var (
	// ErrNotFound is returned when an operation targets an id that is not
	// present and no default value was supplied.
	ErrNotFound = errors.New("item not found")

	// ErrDuplicate is returned when an insert or append targets an id that
	// is already present and the operation requires uniqueness.
	ErrDuplicate = errors.New("item already present")

	// ErrTypeMismatch is returned when an item fails a configured type
	// constraint. Batch operations return it before any mutation occurs.
	ErrTypeMismatch = errors.New("item type not allowed")

	// ErrInvalidKey is returned for malformed index, slice or id arguments.
	ErrInvalidKey = errors.New("invalid index or key")

	// ErrEmptyPile is returned when popping by position from an empty
	// collection without a default.
	ErrEmptyPile = errors.New("pile is empty")
)
