package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/rpggio/noteflow/internal/repository"
	"github.com/stretchr/testify/require"
)

func testEvent(noteID string, date, created time.Time, typ notification.EventType) notification.Event {
	return notification.Event{
		ID:          notification.DedupKey(noteID, date),
		NoteID:      noteID,
		NoteTitle:   "Note " + noteID,
		EventType:   typ,
		EventDate:   date,
		Description: "desc " + noteID,
		CreatedAt:   created,
	}
}

func TestEventRepository_InsertAndListOrder(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(db)

	scan1 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	scan2 := scan1.Add(time.Hour)
	d := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	first := []notification.Event{
		testEvent("a", d, scan1, notification.TypeEvent),
		testEvent("b", d, scan1, notification.TypeDeadline),
	}
	second := []notification.Event{
		testEvent("c", d, scan2, notification.TypeReminder),
		testEvent("d", d, scan2, notification.TypeTime),
	}
	require.NoError(t, repo.InsertBatch(ctx, first))
	require.NoError(t, repo.InsertBatch(ctx, second))
	require.NoError(t, repo.InsertBatch(ctx, nil))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 4)

	ids := []string{events[0].NoteID, events[1].NoteID, events[2].NoteID, events[3].NoteID}
	require.Equal(t, []string{"c", "d", "a", "b"}, ids)
	require.Equal(t, notification.TypeReminder, events[0].EventType)
	require.True(t, d.Equal(events[0].EventDate))
	require.True(t, scan2.Equal(events[0].CreatedAt))
	require.False(t, events[0].IsRead)
}

func TestEventRepository_InsertBatchIsAtomic(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(db)

	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	ev := testEvent("a", now, now, notification.TypeDate)
	require.NoError(t, repo.InsertBatch(ctx, []notification.Event{ev}))

	fresh := testEvent("b", now, now, notification.TypeDate)
	err := repo.InsertBatch(ctx, []notification.Event{fresh, ev})
	require.ErrorIs(t, err, repository.ErrConflict)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestEventRepository_ReadAndDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(db)

	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	a := testEvent("a", now, now, notification.TypeDate)
	b := testEvent("b", now, now, notification.TypeDate)
	require.NoError(t, repo.InsertBatch(ctx, []notification.Event{a, b}))

	require.NoError(t, repo.MarkRead(ctx, a.ID))
	require.ErrorIs(t, repo.MarkRead(ctx, "missing"), repository.ErrNotFound)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.True(t, events[0].IsRead)
	require.False(t, events[1].IsRead)

	require.NoError(t, repo.MarkAllRead(ctx))
	require.NoError(t, repo.MarkAllRead(ctx))
	events, err = repo.List(ctx)
	require.NoError(t, err)
	for _, ev := range events {
		require.True(t, ev.IsRead)
	}

	require.NoError(t, repo.Delete(ctx, a.ID))
	require.ErrorIs(t, repo.Delete(ctx, a.ID), repository.ErrNotFound)
	events, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, b.ID, events[0].ID)
}
