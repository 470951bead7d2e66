package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/repository"
	"github.com/stretchr/testify/require"
)

func testNote(id string, created time.Time) *note.Note {
	return &note.Note{
		ID:        id,
		Title:     "Title " + id,
		Content:   "Body of " + id,
		Category:  "Work",
		Color:     "purple",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestNoteRepository_CRUD(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewNoteRepository(db)

	created := time.Date(2024, 1, 10, 9, 30, 15, 123_000_000, time.UTC)
	n := testNote("n1", created)
	n.IsPinned = true
	require.NoError(t, repo.Create(ctx, n))
	require.ErrorIs(t, repo.Create(ctx, n), repository.ErrConflict)

	got, err := repo.Get(ctx, "n1")
	require.NoError(t, err)
	require.Equal(t, n.Title, got.Title)
	require.Equal(t, n.Content, got.Content)
	require.True(t, got.IsPinned)
	require.False(t, got.IsArchived)
	require.True(t, created.Equal(got.CreatedAt))

	got.Title = "Renamed"
	got.IsArchived = true
	got.UpdatedAt = created.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.Get(ctx, "n1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", again.Title)
	require.True(t, again.IsArchived)
	require.True(t, created.Add(time.Hour).Equal(again.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, "n1"))
	_, err = repo.Get(ctx, "n1")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "n1"), repository.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, got), repository.ErrNotFound)
}

func TestNoteRepository_ListReplaceAndClear(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewNoteRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testNote("b", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, testNote("a", base)))

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, "a", notes[0].ID)
	require.Equal(t, "b", notes[1].ID)

	archived := testNote("x", base)
	archived.IsArchived = true
	require.NoError(t, repo.ReplaceAll(ctx, []note.Note{*testNote("c", base), *archived}))

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	removed, err := repo.DeleteArchived(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "c", notes[0].ID)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	notes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestNoteRepository_ReplaceAllRollsBack(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewNoteRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testNote("keep", base)))

	dup := *testNote("d", base)
	require.Error(t, repo.ReplaceAll(ctx, []note.Note{dup, dup}))

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "keep", notes[0].ID)
}
