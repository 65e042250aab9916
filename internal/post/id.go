package post

import "github.com/google/uuid"

// IDFunc generates post identifiers.
type IDFunc func() string

// NewID returns a random (v4) UUID string.
func NewID() string {
	return uuid.NewString()
}
