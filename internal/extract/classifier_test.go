package extract

import (
	"strings"
	"testing"

	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want notification.EventType
	}{
		{"Deadline: Jan 15", notification.TypeDeadline},
		{"rent due friday", notification.TypeDeadline},
		{"meeting deadline tomorrow", notification.TypeDeadline},
		{"Meeting tomorrow at 3pm", notification.TypeEvent},
		{"dentist appointment", notification.TypeEvent},
		{"Call mom", notification.TypeEvent},
		{"job interview at 10:00", notification.TypeEvent},
		{"Remember the milk", notification.TypeReminder},
		{"reminder: water plants", notification.TypeReminder},
		{"lunch at 12:30", notification.TypeTime},
		{"trip on Jan 3", notification.TypeDate},
		{"", notification.TypeDate},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestDescribe(t *testing.T) {
	content := "Groceries first. Dentist tomorrow at noon! Anything else?"
	require.Equal(t, "Dentist tomorrow at noon", Describe(content, "dentist tomorrow"))
	require.Equal(t, "Dentist tomorrow at noon", Describe(content, "  Dentist tomorrow  "))

	require.Equal(t, "short note", Describe("short note", "not in there"))

	long := strings.Repeat("a", 150)
	got := Describe(long, "zzz")
	require.Equal(t, strings.Repeat("a", 100)+"...", got)

	longSentence := strings.Repeat("word ", 30) + "today"
	got = Describe(longSentence, "today")
	require.True(t, strings.HasSuffix(got, "..."))
	require.Equal(t, 103, len([]rune(got)))

	require.Equal(t, "", Describe("", "today"))
}
