package insight

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rpggio/noteflow/internal/domain/note"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

// Service derives insights from the note collection.
type Service struct {
	pick Picker
	now  func() time.Time
}

// NewService creates an insight service. A nil picker selects at random.
func NewService(pick Picker) *Service {
	if pick == nil {
		pick = rand.IntN
	}
	return &Service{pick: pick, now: time.Now}
}

// Analyze scores notes against each theme's keywords. Pinned notes are scored
// again at double weight and win over the overall score when higher.
func Analyze(notes []note.Note) Analysis {
	if len(notes) == 0 {
		return Analysis{Category: CategoryGeneral, Keywords: []string{}}
	}

	best := CategoryGeneral
	maxScore := 0
	found := []string{}

	all := joinNotes(notes)
	for _, group := range keywordsByCategory {
		score := 0
		for _, kw := range group.keywords {
			if strings.Contains(all, kw) {
				score++
				if !slices.Contains(found, kw) {
					found = append(found, kw)
				}
			}
		}
		if score > maxScore {
			maxScore, best = score, group.category
		}
	}

	var pinned []note.Note
	for _, n := range notes {
		if n.IsPinned {
			pinned = append(pinned, n)
		}
	}
	if len(pinned) > 0 {
		pinnedText := joinNotes(pinned)
		for _, group := range keywordsByCategory {
			score := 0
			for _, kw := range group.keywords {
				if strings.Contains(pinnedText, kw) {
					score += 2
				}
			}
			if score > maxScore {
				maxScore, best = score, group.category
			}
		}
	}

	return Analysis{Category: best, Keywords: found}
}

// Generate picks a tagline and quote for the dominant theme.
func (s *Service) Generate(notes []note.Note) Insight {
	category := Analyze(notes).Category
	lines, sayings := taglines[category], quotes[category]
	return Insight{
		Tagline:  lines[s.pick(len(lines))],
		Quote:    sayings[s.pick(len(sayings))],
		Category: category,
	}
}

// QuickStats summarises the collection. Zero-valued figures other than the
// total are omitted; an empty collection yields no stats.
func (s *Service) QuickStats(notes []note.Note) []Stat {
	if len(notes) == 0 {
		return []Stat{}
	}

	now := s.now()
	pinned, recent := 0, 0
	for _, n := range notes {
		if n.IsPinned {
			pinned++
		}
		if now.Sub(n.CreatedAt) <= 7*24*time.Hour {
			recent++
		}
	}

	stats := []Stat{{Label: "Total Notes", Value: strconv.Itoa(len(notes))}}
	if pinned > 0 {
		stats = append(stats, Stat{Label: "Pinned", Value: strconv.Itoa(pinned)})
	}
	if recent > 0 {
		stats = append(stats, Stat{Label: "This Week", Value: "+" + strconv.Itoa(recent)})
	}
	return stats
}

func joinNotes(notes []note.Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.Title + " " + n.Content
	}
	return strings.ToLower(strings.Join(parts, " "))
}
