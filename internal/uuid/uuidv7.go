// Package uuid generates and checks the identifiers used for sessions,
// save slots and snapshots.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7, falling back to a random UUIDv4 if
// the clock sequence cannot be read.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Valid reports whether s is a canonically formatted UUID.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	return googleuuid.Validate(s) == nil
}
