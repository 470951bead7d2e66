package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	noteID := "n1"
	entry := &activity.ActivityEntry{
		NoteID:       &noteID,
		ActivityType: activity.TypeNoteCreated,
		Summary:      "created",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListActivityOptions{NoteID: &noteID, Limit: activity.DefaultListLimit}).Return([]activity.ActivityEntry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{NoteID: &noteID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_LogValidation(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.ActivityEntry{}), activity.ErrInvalidInput)
}

func TestActivityService_LogWrapsRepositoryError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.Anything).Return(boom)

	svc := activity.NewService(repo, nil)
	err := svc.LogActivity(ctx, &activity.ActivityEntry{ActivityType: activity.TypeScanCompleted, Summary: "scan"})
	require.ErrorIs(t, err, boom)
}

func TestActivityService_ListLimits(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx, activity.ListActivityOptions{Limit: activity.MaxListLimit}).Return(nil, nil).Once()
	repo.On("List", ctx, activity.ListActivityOptions{Limit: 5, Offset: 10}).Return(nil, nil).Once()

	svc := activity.NewService(repo, nil)

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{Limit: 10_000})
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)

	_, err = svc.GetRecentActivity(ctx, activity.ListActivityOptions{Limit: 5, Offset: 10})
	require.NoError(t, err)

	_, err = svc.GetRecentActivity(ctx, activity.ListActivityOptions{Offset: -1})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
	repo.AssertExpectations(t)
}
