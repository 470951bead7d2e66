package extract

import (
	"strings"

	"github.com/rpggio/noteflow/internal/domain/notification"
)

var classifierKeywords = []struct {
	typ      notification.EventType
	keywords []string
}{
	{notification.TypeDeadline, []string{"deadline", "due"}},
	{notification.TypeEvent, []string{"meeting", "appointment", "call", "conference", "interview"}},
	{notification.TypeReminder, []string{"reminder", "remember"}},
}

// Classify assigns an event type to a line by keyword, first match wins.
// Lines with a clock time and no keyword are time events; the rest are dates.
func Classify(line string) notification.EventType {
	lower := strings.ToLower(line)
	for _, group := range classifierKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.typ
			}
		}
	}
	if clockPattern.MatchString(lower) {
		return notification.TypeTime
	}
	return notification.TypeDate
}
