package repository

import "errors"

// ErrNotFound is returned by mutators addressing an id that does not exist.
// Lookups report absence as a nil result instead.
var ErrNotFound = errors.New("not found")

// Resolve implements the two-tier read policy: persisted data wins once it
// exists, otherwise the static seed data is served.
func Resolve[T any](stored, fixtures []T) []T {
	if len(stored) > 0 {
		return stored
	}
	return fixtures
}
