package extract

import (
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
)

// Scanner turns notes into detected events. It implements notification.Scanner.
type Scanner struct {
	recognizer *Recognizer
	logger     *slog.Logger
}

// NewScanner creates a scanner using the built-in recognition rules.
func NewScanner(opts Options, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{recognizer: NewRecognizer(opts), logger: logger}
}

// Scan returns events found in the non-archived notes that are not already in
// existing, in scan order. Each note/date pair yields at most one event.
func (s *Scanner) Scan(notes []note.Note, existing []notification.Event, now time.Time) []notification.Event {
	seen := make(map[string]bool, len(existing))
	for _, ev := range existing {
		seen[ev.ID] = true
	}

	var created []notification.Event
	unresolved := 0
	for _, n := range notes {
		if n.IsArchived {
			continue
		}
		for _, line := range strings.Split(n.Title+" "+n.Content, "\n") {
			date, ok := s.recognizer.Resolve(line, now)
			if !ok {
				if HasNumericDate(line) || HasTime(line) {
					unresolved++
				}
				continue
			}
			id := notification.DedupKey(n.ID, date)
			if seen[id] {
				continue
			}
			seen[id] = true
			created = append(created, notification.Event{
				ID:          id,
				NoteID:      n.ID,
				NoteTitle:   n.Title,
				EventType:   Classify(line),
				EventDate:   date,
				Description: Describe(n.Content, line),
				CreatedAt:   now,
			})
		}
	}

	if unresolved > 0 {
		s.logger.Debug("lines with unresolved date or time text", "count", unresolved)
	}
	return created
}

var _ notification.Scanner = (*Scanner)(nil)
