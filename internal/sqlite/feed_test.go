package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/rpggio/noteflow/internal/extract"
	"github.com/stretchr/testify/require"
)

func newFeed(db *DB, now time.Time) *notification.Service {
	return notification.NewService(
		NewEventRepository(db),
		extract.NewScanner(extract.Options{}, nil),
		NewActivityRepository(db),
		nil,
		notification.WithClock(func() time.Time { return now }),
		notification.WithLocation(time.UTC),
	)
}

func TestFeed_ScanPersistsAndReloads(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	notes := []note.Note{
		{ID: "n1", Title: "Launch", Content: "Launch in 3000000 days"},
		{ID: "n2", Title: "Archive", Content: "Archive 0000-00-00"},
		{ID: "n3", Title: "Due", Content: "Due in 9000000000000000000 days"},
		{ID: "n4", Title: "Far", Content: "Review in 200000 months\nReview in 12 months"},
		{ID: "n5", Title: "Soon", Content: "Dentist appointment tomorrow"},
	}

	feed := newFeed(db, now)
	require.NoError(t, feed.Load(ctx))
	created, err := feed.Scan(ctx, notes)
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.Equal(t, "n4", created[0].NoteID)
	require.Equal(t, 2025, created[0].EventDate.Year())
	require.Equal(t, "n5", created[1].NoteID)

	_, err = json.Marshal(feed.View(0))
	require.NoError(t, err)

	reloaded := newFeed(db, now)
	require.NoError(t, reloaded.Load(ctx))
	events := reloaded.Events()
	require.Len(t, events, 2)
	for i, ev := range events {
		require.Equal(t, created[i].ID, ev.ID)
		require.True(t, created[i].EventDate.Equal(ev.EventDate))
	}

	again, err := reloaded.Scan(ctx, notes)
	require.NoError(t, err)
	require.Empty(t, again)
}

func TestFeed_ScanActivitySharesEventTimestamp(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	tick := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	feed := notification.NewService(
		NewEventRepository(db),
		extract.NewScanner(extract.Options{}, nil),
		NewActivityRepository(db),
		nil,
		notification.WithClock(clock),
		notification.WithLocation(time.UTC),
	)
	created, err := feed.Scan(ctx, []note.Note{{ID: "n1", Title: "Plan", Content: "Standup tomorrow"}})
	require.NoError(t, err)
	require.Len(t, created, 1)

	typ := activity.TypeScanCompleted
	entries, err := NewActivityRepository(db).List(ctx, activity.ListActivityOptions{ActivityType: &typ})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, created[0].CreatedAt.Equal(entries[0].CreatedAt),
		"event %s, activity %s", created[0].CreatedAt, entries[0].CreatedAt)
}
