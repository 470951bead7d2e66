package note

import "errors"

var (
	// ErrNoteNotFound indicates the note doesn't exist.
	ErrNoteNotFound = errors.New("note not found")
	// ErrInvalidInput indicates invalid note input.
	ErrInvalidInput = errors.New("invalid note input")
	// ErrInvalidImport indicates an import bundle without a notes array.
	ErrInvalidImport = errors.New("invalid import bundle")
)
