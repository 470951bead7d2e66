package mocks

import (
	"context"
	"time"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/stretchr/testify/mock"
)

// NoteRepository is a mock for note.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*note.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) ReplaceAll(ctx context.Context, notes []note.Note) error {
	args := m.Called(ctx, notes)
	return args.Error(0)
}

func (m *NoteRepository) DeleteArchived(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// EventRepository is a mock for notification.Repository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) List(ctx context.Context) ([]notification.Event, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]notification.Event); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EventRepository) InsertBatch(ctx context.Context, events []notification.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *EventRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepository) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Scanner is a mock for notification.Scanner.
type Scanner struct {
	mock.Mock
}

func (m *Scanner) Scan(notes []note.Note, existing []notification.Event, now time.Time) []notification.Event {
	args := m.Called(notes, existing, now)
	if list, ok := args.Get(0).([]notification.Event); ok {
		return list
	}
	return nil
}
