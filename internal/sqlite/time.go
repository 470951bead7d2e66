package sqlite

import (
	"fmt"
	"time"

	"github.com/rpggio/noteflow/internal/domain/notification"
)

func formatTime(t time.Time) string {
	return notification.FormatInstant(t)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(notification.ISOLayout, s)
	if err != nil {
		// Also accept RFC 3339.
		if t2, err2 := time.Parse(time.RFC3339Nano, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
