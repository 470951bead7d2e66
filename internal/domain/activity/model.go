package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeNoteCreated   ActivityType = "note_created"
	TypeNoteUpdated   ActivityType = "note_updated"
	TypeNoteDeleted   ActivityType = "note_deleted"
	TypeNotePinned    ActivityType = "note_pinned"
	TypeNoteArchived  ActivityType = "note_archived"
	TypeNotesImported ActivityType = "notes_imported"
	TypeNotesCleared  ActivityType = "notes_cleared"
	TypeScanCompleted ActivityType = "scan_completed"
	TypeEventRead     ActivityType = "event_read"
	TypeEventsReadAll ActivityType = "events_read_all"
	TypeEventDeleted  ActivityType = "event_deleted"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	NoteID       *string      `json:"noteId,omitempty"`
	EventID      *string      `json:"eventId,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"createdAt"`
}
