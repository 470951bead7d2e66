package note

import (
	"context"

	"github.com/rpggio/noteflow/internal/domain/activity"
)

// Repository provides persistence for notes.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	Get(ctx context.Context, id string) (*Note, error)
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Note, error)
	ReplaceAll(ctx context.Context, notes []Note) error
	DeleteArchived(ctx context.Context) (int, error)
}

// ActivityRepository logs note activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
