package insight

import (
	"testing"
	"time"

	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("empty collection is general", func(t *testing.T) {
		a := Analyze(nil)
		require.Equal(t, CategoryGeneral, a.Category)
		require.Empty(t, a.Keywords)
	})

	t.Run("no keywords is general", func(t *testing.T) {
		a := Analyze([]note.Note{{Title: "groceries", Content: "milk and eggs"}})
		require.Equal(t, CategoryGeneral, a.Category)
	})

	t.Run("highest score wins", func(t *testing.T) {
		a := Analyze([]note.Note{
			{Title: "Sprint", Content: "task list for the project, set a goal"},
			{Title: "Sketch", Content: "an idea"},
		})
		require.Equal(t, CategoryProductivity, a.Category)
		require.Contains(t, a.Keywords, "task")
		require.Contains(t, a.Keywords, "idea")
	})

	t.Run("pinned notes count double", func(t *testing.T) {
		a := Analyze([]note.Note{
			{Title: "Work", Content: "task and project"},
			{Title: "Evening", Content: "journal with gratitude", IsPinned: true},
		})
		require.Equal(t, CategoryMindfulness, a.Category)
	})
}

func TestGenerate(t *testing.T) {
	svc := NewService(func(n int) int { return n - 1 })
	in := svc.Generate([]note.Note{{Title: "Morning", Content: "meditate and reflect"}})

	require.Equal(t, CategoryMindfulness, in.Category)
	require.Equal(t, taglines[CategoryMindfulness][len(taglines[CategoryMindfulness])-1], in.Tagline)
	require.Equal(t, quotes[CategoryMindfulness][len(quotes[CategoryMindfulness])-1], in.Quote)

	random := NewService(nil).Generate(nil)
	require.Equal(t, CategoryGeneral, random.Category)
	require.Contains(t, taglines[CategoryGeneral], random.Tagline)
	require.Contains(t, quotes[CategoryGeneral], random.Quote)
}

func TestQuickStats(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := NewService(nil)
	svc.now = func() time.Time { return now }

	require.Empty(t, svc.QuickStats(nil))

	stats := svc.QuickStats([]note.Note{
		{CreatedAt: now.Add(-time.Hour), IsPinned: true},
		{CreatedAt: now.AddDate(0, 0, -30)},
	})
	require.Equal(t, []Stat{
		{Label: "Total Notes", Value: "2"},
		{Label: "Pinned", Value: "1"},
		{Label: "This Week", Value: "+1"},
	}, stats)

	stats = svc.QuickStats([]note.Note{{CreatedAt: now.AddDate(0, 0, -30)}})
	require.Equal(t, []Stat{{Label: "Total Notes", Value: "1"}}, stats)
}
