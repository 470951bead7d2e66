package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobs(t *testing.T) {
	s := New(context.Background(), time.UTC, nil)

	var runs atomic.Int32
	require.NoError(t, s.Add("@every 1s", "count", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(context.Background(), nil, nil)
	require.Error(t, s.Add("not a schedule", "bad", func(context.Context) error { return nil }))
	require.Error(t, s.Add("* * * * * *", "six fields", func(context.Context) error { return nil }))
	require.NoError(t, s.Add("*/5 * * * *", "ok", func(context.Context) error { return nil }))
}

type stubNotes struct {
	notes []note.Note
	err   error
}

func (s stubNotes) All(context.Context) ([]note.Note, error) { return s.notes, s.err }

type stubFeed struct {
	scanned []note.Note
}

func (f *stubFeed) Scan(_ context.Context, notes []note.Note) ([]notification.Event, error) {
	f.scanned = notes
	return nil, nil
}

func TestScanJob(t *testing.T) {
	ctx := context.Background()
	feed := &stubFeed{}
	notes := []note.Note{{ID: "a"}, {ID: "b"}}

	require.NoError(t, ScanJob(stubNotes{notes: notes}, feed)(ctx))
	require.Equal(t, notes, feed.scanned)

	feed = &stubFeed{}
	require.Error(t, ScanJob(stubNotes{err: errors.New("db closed")}, feed)(ctx))
	require.Nil(t, feed.scanned)
}
