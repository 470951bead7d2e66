package note

import "time"

// Note is a user-authored text note.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	IsPinned   bool      `json:"isPinned"`
	IsArchived bool      `json:"isArchived"`
}

// Stats summarises the note collection.
type Stats struct {
	Total      int            `json:"total"`
	Pinned     int            `json:"pinned"`
	Archived   int            `json:"archived"`
	ByCategory map[string]int `json:"byCategory"`
}

// ExportBundle is the JSON backup format.
type ExportBundle struct {
	Notes      []Note    `json:"notes"`
	ExportDate time.Time `json:"exportDate"`
	Version    string    `json:"version"`
}

// ExportVersion is written into every export bundle.
const ExportVersion = "1.0"

// DefaultCategory is used when a note is created without one.
const DefaultCategory = "Other"

// Categories lists the allowed note categories in display order.
var Categories = []string{
	"Personal",
	"Work",
	"Ideas",
	"Tasks",
	"Study",
	"Health",
	"Finance",
	"Other",
}

// Colors lists the palette names a note may use. The first entry is the default.
var Colors = []string{
	"purple", "blue", "green", "orange", "red", "pink", "yellow", "indigo",
	"cyan", "lime", "violet", "fuchsia", "sky", "teal", "amber", "slate",
}
