package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/repository"
)

// Service is the notification feed. It owns the detected event collection:
// every read and mutation goes through one instance, serialised by mu.
type Service struct {
	repo       Repository
	scanner    Scanner
	activities ActivityRepository
	logger     *slog.Logger
	loc        *time.Location
	now        func() time.Time

	mu        sync.Mutex
	loaded    bool
	events    []Event
	listeners map[int]func(View)
	nextID    int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for scans and day boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the location that defines "today".
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewService creates a feed. Call Load before serving reads.
func NewService(repo Repository, scanner Scanner, activities ActivityRepository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		repo:       repo,
		scanner:    scanner,
		activities: activities,
		logger:     logger,
		loc:        time.Local,
		now:        time.Now,
		listeners:  make(map[int]func(View)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Service) loadLocked(ctx context.Context) error {
	events, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}
	s.events = events
	s.loaded = true
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

// Scan detects events in notes and prepends the new ones to the feed.
// It returns only the events created by this pass.
func (s *Service) Scan(ctx context.Context, notes []note.Note) ([]Event, error) {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	now := s.now().In(s.loc)
	created := s.scanner.Scan(notes, s.events, now)
	if len(created) > 0 {
		if err := s.repo.InsertBatch(ctx, created); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("storing detected events: %w", err)
		}
		merged := make([]Event, 0, len(created)+len(s.events))
		merged = append(merged, created...)
		merged = append(merged, s.events...)
		s.events = merged
	}
	view, listeners := s.snapshotLocked(0)
	s.mu.Unlock()

	s.logger.Debug("scan completed", "notes", len(notes), "new_events", len(created))
	details, _ := json.Marshal(map[string]int{"notes": len(notes), "events": len(created)})
	s.logActivity(ctx, now, nil, activity.TypeScanCompleted, fmt.Sprintf("scanned %d notes, %d new events", len(notes), len(created)), string(details))

	if len(created) > 0 {
		notify(listeners, view)
	}
	return created, nil
}

// Events returns a copy of the full collection in stored order.
func (s *Service) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// UnreadCount counts events not yet marked read.
func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadLocked()
}

// Today returns events dated today, ascending by event date.
func (s *Service) Today() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayLocked()
}

// Upcoming returns events dated after today, ascending by event date.
// A limit of zero or less returns all of them.
func (s *Service) Upcoming(limit int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upcomingLocked(limit)
}

// View returns unread count, today and upcoming computed from one snapshot.
func (s *Service) View(upcomingLimit int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(upcomingLimit)
}

// Stale returns events whose note is not among noteIDs.
func (s *Service) Stale(noteIDs []string) []Event {
	known := make(map[string]bool, len(noteIDs))
	for _, id := range noteIDs {
		known[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var stale []Event
	for _, ev := range s.events {
		if !known[ev.NoteID] {
			stale = append(stale, ev)
		}
	}
	return stale
}

// MarkAsRead marks one event read. Unknown or already read ids are a no-op.
func (s *Service) MarkAsRead(ctx context.Context, id string) error {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	idx := s.indexLocked(id)
	if idx < 0 || s.events[idx].IsRead {
		s.mu.Unlock()
		return nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.mu.Unlock()
		return fmt.Errorf("marking event read: %w", err)
	}
	s.events[idx].IsRead = true
	view, listeners := s.snapshotLocked(0)
	s.mu.Unlock()

	s.logActivity(ctx, s.now(), &id, activity.TypeEventRead, fmt.Sprintf("marked event %s read", id), "")
	notify(listeners, view)
	return nil
}

// MarkAllAsRead marks every event read.
func (s *Service) MarkAllAsRead(ctx context.Context) error {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	unread := s.unreadLocked()
	if unread == 0 {
		s.mu.Unlock()
		return nil
	}
	if err := s.repo.MarkAllRead(ctx); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("marking all events read: %w", err)
	}
	for i := range s.events {
		s.events[i].IsRead = true
	}
	view, listeners := s.snapshotLocked(0)
	s.mu.Unlock()

	s.logActivity(ctx, s.now(), nil, activity.TypeEventsReadAll, fmt.Sprintf("marked %d events read", unread), "")
	notify(listeners, view)
	return nil
}

// Delete removes an event permanently. Unknown ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.mu.Unlock()
		return fmt.Errorf("deleting event: %w", err)
	}
	s.events = slices.Delete(s.events, idx, idx+1)
	view, listeners := s.snapshotLocked(0)
	s.mu.Unlock()

	s.logActivity(ctx, s.now(), &id, activity.TypeEventDeleted, fmt.Sprintf("deleted event %s", id), "")
	notify(listeners, view)
	return nil
}

// Subscribe registers fn to receive the feed view after every change.
// The returned func removes the subscription.
func (s *Service) Subscribe(fn func(View)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) indexLocked(id string) int {
	return slices.IndexFunc(s.events, func(ev Event) bool { return ev.ID == id })
}

func (s *Service) unreadLocked() int {
	count := 0
	for _, ev := range s.events {
		if !ev.IsRead {
			count++
		}
	}
	return count
}

func (s *Service) todayLocked() []Event {
	today := StartOfDay(s.now().In(s.loc))
	return s.filterSorted(func(day time.Time) bool { return day.Equal(today) }, 0)
}

func (s *Service) upcomingLocked(limit int) []Event {
	today := StartOfDay(s.now().In(s.loc))
	return s.filterSorted(func(day time.Time) bool { return day.After(today) }, limit)
}

func (s *Service) filterSorted(keep func(day time.Time) bool, limit int) []Event {
	out := []Event{}
	for _, ev := range s.events {
		if keep(StartOfDay(ev.EventDate.In(s.loc))) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.Before(out[j].EventDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Service) viewLocked(upcomingLimit int) View {
	return View{
		UnreadCount: s.unreadLocked(),
		Today:       s.todayLocked(),
		Upcoming:    s.upcomingLocked(upcomingLimit),
		Total:       len(s.events),
	}
}

func (s *Service) snapshotLocked(upcomingLimit int) (View, []func(View)) {
	if len(s.listeners) == 0 {
		return View{}, nil
	}
	listeners := make([]func(View), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return s.viewLocked(upcomingLimit), listeners
}

func notify(listeners []func(View), view View) {
	for _, fn := range listeners {
		fn(view)
	}
}

func (s *Service) logActivity(ctx context.Context, at time.Time, eventID *string, typ activity.ActivityType, summary, details string) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, &activity.ActivityEntry{
		EventID:      eventID,
		ActivityType: typ,
		Summary:      summary,
		Details:      details,
		CreatedAt:    at,
	})
	if err != nil {
		s.logger.Warn("failed to log feed activity", "type", typ, "error", err)
	}
}
