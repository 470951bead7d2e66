package note

import (
	"slices"
	"strings"
)

// ValidateCreateInput validates fields required to create a note.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		return ErrInvalidInput
	}
	if req.Category != "" && !ValidCategory(req.Category) {
		return ErrInvalidInput
	}
	if req.Color != "" && !ValidColor(req.Color) {
		return ErrInvalidInput
	}
	return nil
}

// ValidateImported checks a note read from an import bundle. Older backups
// carry free-form categories and colors, so only the id is required.
func ValidateImported(n Note) error {
	if strings.TrimSpace(n.ID) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	return slices.Contains(Categories, c)
}

// ValidColor reports whether c is a palette color.
func ValidColor(c string) bool {
	return slices.Contains(Colors, c)
}
