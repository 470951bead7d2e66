package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/repository"
)

// Service handles note business logic.
type Service struct {
	notes      Repository
	activities ActivityRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new note service.
func NewService(notes Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		notes:      notes,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateRequest describes a note creation request.
type CreateRequest struct {
	Title      string
	Content    string
	Category   string
	Color      string
	IsPinned   bool
	IsArchived bool
}

// UpdateRequest describes a partial note update. Nil fields are left unchanged.
type UpdateRequest struct {
	ID       string
	Title    *string
	Content  *string
	Category *string
	Color    *string
}

// Create stores a new note.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Note, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = DefaultCategory
	}
	color := req.Color
	if color == "" {
		color = Colors[0]
	}

	now := s.now()
	n := &Note{
		ID:         uuid.NewString(),
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		Category:   category,
		Color:      color,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsPinned:   req.IsPinned,
		IsArchived: req.IsArchived,
	}

	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	s.logActivity(ctx, &n.ID, activity.TypeNoteCreated, fmt.Sprintf("created note %s", n.ID))
	return n, nil
}

// Get returns a note by ID.
func (s *Service) Get(ctx context.Context, id string) (*Note, error) {
	n, err := s.notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("getting note: %w", err)
	}
	return n, nil
}

// Update applies a partial update and bumps UpdatedAt.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Note, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrInvalidInput
	}
	if req.Category != nil && !ValidCategory(*req.Category) {
		return nil, ErrInvalidInput
	}
	if req.Color != nil && !ValidColor(*req.Color) {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}
	if strings.TrimSpace(updated.Title) == "" && strings.TrimSpace(updated.Content) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	s.logActivity(ctx, &updated.ID, activity.TypeNoteUpdated, fmt.Sprintf("updated note %s", updated.ID))
	return &updated, nil
}

// TogglePin flips the pinned flag.
func (s *Service) TogglePin(ctx context.Context, id string) (*Note, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current
	updated.IsPinned = !updated.IsPinned
	if err := s.save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("toggling pin: %w", err)
	}
	s.logActivity(ctx, &updated.ID, activity.TypeNotePinned, fmt.Sprintf("note %s pinned=%t", updated.ID, updated.IsPinned))
	return &updated, nil
}

// ToggleArchive flips the archived flag. Archived notes are skipped by event scans.
func (s *Service) ToggleArchive(ctx context.Context, id string) (*Note, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current
	updated.IsArchived = !updated.IsArchived
	if err := s.save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("toggling archive: %w", err)
	}
	s.logActivity(ctx, &updated.ID, activity.TypeNoteArchived, fmt.Sprintf("note %s archived=%t", updated.ID, updated.IsArchived))
	return &updated, nil
}

// Delete removes a note. Detected events referencing it are left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("deleting note: %w", err)
	}
	s.logActivity(ctx, &id, activity.TypeNoteDeleted, fmt.Sprintf("deleted note %s", id))
	return nil
}

// All returns every note, archived included, in storage order.
func (s *Service) All(ctx context.Context) ([]Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// List returns notes matching opts, pinned first and then most recently updated.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Note, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(opts.Query))
	filtered := make([]Note, 0, len(all))
	for _, n := range all {
		if opts.Category != "" && n.Category != opts.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(n.Title), query) &&
			!strings.Contains(strings.ToLower(n.Content), query) {
			continue
		}
		if n.IsArchived != opts.ShowArchived {
			continue
		}
		if opts.ShowPinned && !n.IsPinned {
			continue
		}
		filtered = append(filtered, n)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	return filtered, nil
}

// Stats counts notes by state. Per-category counts exclude archived notes.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Total:      len(all),
		ByCategory: make(map[string]int, len(Categories)),
	}
	for _, c := range Categories {
		stats.ByCategory[c] = 0
	}
	for _, n := range all {
		if n.IsPinned {
			stats.Pinned++
		}
		if n.IsArchived {
			stats.Archived++
			continue
		}
		if ValidCategory(n.Category) {
			stats.ByCategory[n.Category]++
		}
	}
	return stats, nil
}

// Categories returns the distinct categories currently in use, in first-seen order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, n := range all {
		if !seen[n.Category] {
			seen[n.Category] = true
			out = append(out, n.Category)
		}
	}
	return out, nil
}

func (s *Service) save(ctx context.Context, n *Note) error {
	n.UpdatedAt = s.now()
	if err := s.notes.Update(ctx, n); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}

func (s *Service) logActivity(ctx context.Context, noteID *string, typ activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, &activity.ActivityEntry{
		NoteID:       noteID,
		ActivityType: typ,
		Summary:      summary,
		CreatedAt:    s.now(),
	})
	if err != nil {
		s.logger.Warn("failed to log note activity", "type", typ, "error", err)
	}
}
