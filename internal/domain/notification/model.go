package notification

import (
	"fmt"
	"time"
)

// EventType classifies a detected event. The set is closed.
type EventType uint8

const (
	TypeDate EventType = iota
	TypeTime
	TypeDeadline
	TypeEvent
	TypeReminder
)

// EventTypes lists every event type in declaration order.
var EventTypes = []EventType{TypeDate, TypeTime, TypeDeadline, TypeEvent, TypeReminder}

func (t EventType) String() string {
	switch t {
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeDeadline:
		return "deadline"
	case TypeEvent:
		return "event"
	case TypeReminder:
		return "reminder"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the declared types.
func (t EventType) Valid() bool {
	return t <= TypeReminder
}

// ParseEventType maps the wire name back to an EventType.
func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventType, s)
}

func (t EventType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEventType, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(text []byte) error {
	parsed, err := ParseEventType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Event is a date reference detected inside a note. ID doubles as the dedup key.
type Event struct {
	ID          string    `json:"id"`
	NoteID      string    `json:"noteId"`
	NoteTitle   string    `json:"noteTitle"`
	EventType   EventType `json:"eventType"`
	EventDate   time.Time `json:"eventDate"`
	Description string    `json:"description"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// View is the derived feed state handed to consumers after every change.
type View struct {
	UnreadCount int     `json:"unreadCount"`
	Today       []Event `json:"today"`
	Upcoming    []Event `json:"upcoming"`
	Total       int     `json:"total"`
}

// ISOLayout formats instants as UTC ISO-8601 with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatInstant renders t in ISOLayout.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// DedupKey builds the identifier shared by every detection of the same note/date pair.
func DedupKey(noteID string, eventDate time.Time) string {
	return noteID + "-" + FormatInstant(eventDate)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
