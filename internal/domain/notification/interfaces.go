package notification

import (
	"context"
	"time"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
)

// Repository persists detected events.
type Repository interface {
	// List returns every stored event, most recent scan first.
	List(ctx context.Context) ([]Event, error)
	// InsertBatch stores the events of one scan atomically.
	InsertBatch(ctx context.Context, events []Event) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// Scanner detects new events in notes, given the events already known.
type Scanner interface {
	Scan(notes []note.Note, existing []Event, now time.Time) []Event
}

// ActivityRepository logs feed activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
