package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityID is a value object identifying a simulated entity. Routes hold EntityIDs,
// never live references, so a destroyed entity simply stops resolving.
type EntityID struct {
	value uuid.UUID
}

// NewEntityID generates a fresh entity identifier
func NewEntityID() EntityID {
	return EntityID{value: uuid.New()}
}

// ParseEntityID creates an EntityID from its string form
func ParseEntityID(s string) (EntityID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EntityID{}, fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	return EntityID{value: id}, nil
}

// MustParseEntityID creates an EntityID, panicking on invalid input.
// Use this only when the string is known valid (e.g., from the database)
func MustParseEntityID(s string) EntityID {
	id, err := ParseEntityID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical string form of the EntityID
func (e EntityID) String() string {
	return e.value.String()
}

// Equals checks if two EntityIDs identify the same entity
func (e EntityID) Equals(other EntityID) bool {
	return e.value == other.value
}

// IsZero checks if the EntityID is the zero value (uninitialized)
func (e EntityID) IsZero() bool {
	return e.value == uuid.Nil
}
