package note_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/repository"
	"github.com/rpggio/noteflow/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService() (*note.Service, *mocks.NoteRepository, *mocks.ActivityRepository) {
	notes := &mocks.NoteRepository{}
	activities := &mocks.ActivityRepository{}
	activities.On("Log", mock.Anything, mock.Anything).Return(nil)
	return note.NewService(notes, activities, nil), notes, activities
}

func strPtr(s string) *string { return &s }

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()
	svc, notes, activities := newService()
	notes.On("Create", ctx, mock.AnythingOfType("*note.Note")).Return(nil)

	n, err := svc.Create(ctx, note.CreateRequest{Title: "  Groceries ", Content: "milk"})
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)
	require.Equal(t, "Groceries", n.Title)
	require.Equal(t, note.DefaultCategory, n.Category)
	require.Equal(t, note.Colors[0], n.Color)
	require.False(t, n.CreatedAt.IsZero())
	require.Equal(t, n.CreatedAt, n.UpdatedAt)

	activities.AssertCalled(t, "Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeNoteCreated && *e.NoteID == n.ID
	}))
}

func TestNoteService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()

	_, err := svc.Create(ctx, note.CreateRequest{Title: " ", Content: "\n"})
	require.ErrorIs(t, err, note.ErrInvalidInput)
	_, err = svc.Create(ctx, note.CreateRequest{Title: "x", Category: "Gardening"})
	require.ErrorIs(t, err, note.ErrInvalidInput)
	_, err = svc.Create(ctx, note.CreateRequest{Title: "x", Color: "beige"})
	require.ErrorIs(t, err, note.ErrInvalidInput)
	notes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNoteService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()
	notes.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, note.ErrNoteNotFound)
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := &note.Note{ID: "n1", Title: "Old", Content: "body", Category: "Work", Color: "blue", CreatedAt: old, UpdatedAt: old}
	notes.On("Get", ctx, "n1").Return(current, nil)
	notes.On("Update", ctx, mock.AnythingOfType("*note.Note")).Return(nil)

	updated, err := svc.Update(ctx, note.UpdateRequest{ID: "n1", Title: strPtr("New"), Category: strPtr("Ideas")})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.Equal(t, "body", updated.Content)
	require.Equal(t, "Ideas", updated.Category)
	require.Equal(t, "blue", updated.Color)
	require.True(t, updated.UpdatedAt.After(old))
	require.Equal(t, "Old", current.Title)

	_, err = svc.Update(ctx, note.UpdateRequest{ID: "n1", Title: strPtr(""), Content: strPtr(" ")})
	require.ErrorIs(t, err, note.ErrInvalidInput)
	_, err = svc.Update(ctx, note.UpdateRequest{ID: "n1", Color: strPtr("beige")})
	require.ErrorIs(t, err, note.ErrInvalidInput)
	_, err = svc.Update(ctx, note.UpdateRequest{})
	require.ErrorIs(t, err, note.ErrInvalidInput)
}

func TestNoteService_Toggles(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()
	notes.On("Get", ctx, "n1").Return(&note.Note{ID: "n1", Title: "x"}, nil)
	notes.On("Update", ctx, mock.AnythingOfType("*note.Note")).Return(nil)

	pinned, err := svc.TogglePin(ctx, "n1")
	require.NoError(t, err)
	require.True(t, pinned.IsPinned)

	archived, err := svc.ToggleArchive(ctx, "n1")
	require.NoError(t, err)
	require.True(t, archived.IsArchived)
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()
	notes.On("Delete", ctx, "n1").Return(nil)
	notes.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "n1"))
	require.ErrorIs(t, svc.Delete(ctx, "missing"), note.ErrNoteNotFound)
}

func fixtures() []note.Note {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []note.Note{
		{ID: "a", Title: "Groceries", Content: "milk", Category: "Personal", UpdatedAt: base},
		{ID: "b", Title: "Sprint", Content: "Ship the API", Category: "Work", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "c", Title: "Old plan", Content: "api draft", Category: "Work", UpdatedAt: base.Add(3 * time.Hour), IsArchived: true},
		{ID: "d", Title: "Pinned", Content: "keep", Category: "Ideas", UpdatedAt: base, IsPinned: true},
		{ID: "e", Title: "Recent", Content: "", Category: "Work", UpdatedAt: base.Add(time.Hour)},
	}
}

func ids(notes []note.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()
	notes.On("List", ctx).Return(fixtures(), nil)

	all, err := svc.List(ctx, note.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"d", "b", "e", "a"}, ids(all))

	work, err := svc.List(ctx, note.ListOptions{Category: "Work"})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "e"}, ids(work))

	search, err := svc.List(ctx, note.ListOptions{Query: "API"})
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, ids(search))

	archived, err := svc.List(ctx, note.ListOptions{ShowArchived: true})
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, ids(archived))

	pinned, err := svc.List(ctx, note.ListOptions{ShowPinned: true})
	require.NoError(t, err)
	require.Equal(t, []string{"d"}, ids(pinned))
}

func TestNoteService_StatsAndCategories(t *testing.T) {
	ctx := context.Background()
	svc, notes, _ := newService()
	notes.On("List", ctx).Return(fixtures(), nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, stats.Total)
	require.Equal(t, 1, stats.Pinned)
	require.Equal(t, 1, stats.Archived)
	require.Equal(t, 2, stats.ByCategory["Work"])
	require.Equal(t, 1, stats.ByCategory["Personal"])
	require.Equal(t, 0, stats.ByCategory["Health"])
	require.Len(t, stats.ByCategory, len(note.Categories))

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Personal", "Work", "Ideas"}, cats)
}
