package core

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is an opaque, globally unique identifier. IDs are comparable and usable
// as map keys; equality is defined by value. The zero value is the empty ID
// and is never produced by NewID.
type ID string

// NewID generates a new random (version 4 UUID) identifier.
func NewID() ID { return ID(uuid.NewString()) }

// ParseID validates a string as a version 4 UUID identifier.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid id: %v", ErrInvalidKey, s, err)
	}
	if u.Version() != 4 {
		return "", fmt.Errorf("%w: %q is not a version 4 uuid", ErrInvalidKey, s)
	}
	return ID(u.String()), nil
}

// String returns the canonical string form of the ID.
func (id ID) String() string { return string(id) }

// IsZero reports whether the ID is the empty zero value.
func (id ID) IsZero() bool { return id == "" }

// Identifiable is the contract every pile item satisfies: a stable identity
// that does not change for the lifetime of the value.
type Identifiable interface {
	Identity() ID
}
