// Package uuid generates record identifiers.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Entropy failure: a random v4 id is still unique.
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
// Identifiers restored from older backups are not required to pass this.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
