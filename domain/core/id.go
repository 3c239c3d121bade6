package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	SnapshotID ID
	RequestID  ID
)

func (id SnapshotID) String() string { return ID(id).String() }
func (id RequestID) String() string  { return ID(id).String() }

// NewSnapshotID identifies one load of the dataset
func NewSnapshotID() SnapshotID { return SnapshotID(NewID()) }

// NewRequestID identifies one HTTP request
func NewRequestID() RequestID { return RequestID(NewID()) }

// ParseRequestID accepts a caller-supplied request ID; it must be a UUID
func ParseRequestID(s string) (RequestID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("request ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("request ID %q is not a UUID: %w", s, err)
	}
	return RequestID(parsed.String()), nil
}
