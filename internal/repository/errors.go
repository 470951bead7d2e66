package repository

import "errors"

// Storage errors shared by every repository implementation. Domain packages
// declare the repository interfaces they consume and match against these.
var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing key
	ErrConflict = errors.New("conflict: entity already exists")
)
