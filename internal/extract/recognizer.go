package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/rpggio/noteflow/internal/domain/notification"
)

// Options tunes date recognition.
type Options struct {
	// HonorExplicitYear places month-name dates in a written 4-digit year
	// instead of the current one.
	HonorExplicitYear bool
}

// Rule resolves a lowercased line relative to today (midnight in now's location).
type Rule struct {
	Name    string
	Resolve func(line string, today time.Time) (time.Time, bool)
}

// Recognizer resolves the first date reference in a line of text.
type Recognizer struct {
	rules []Rule
}

// NewRecognizer returns a recognizer with the built-in rules in priority order.
func NewRecognizer(opts Options) *Recognizer {
	return &Recognizer{
		rules: []Rule{
			{Name: "today", Resolve: offsetKeyword("today", 0)},
			{Name: "tomorrow", Resolve: offsetKeyword("tomorrow", 1)},
			{Name: "yesterday", Resolve: offsetKeyword("yesterday", -1)},
			{Name: "weekday", Resolve: resolveWeekday},
			{Name: "next week", Resolve: offsetKeyword("next week", 7)},
			{Name: "in duration", Resolve: resolveInDuration},
			{Name: "month name", Resolve: monthNameRule(opts.HonorExplicitYear)},
			{Name: "iso date", Resolve: resolveISODate},
		},
	}
}

// Rules lists the rule names in the order they are tried.
func (r *Recognizer) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Resolve returns the date of the first rule matching line, truncated to
// midnight in now's location.
func (r *Recognizer) Resolve(line string, now time.Time) (time.Time, bool) {
	_, date, ok := r.resolve(line, now)
	return date, ok
}

// Match is Resolve plus the name of the rule that matched.
func (r *Recognizer) Match(line string, now time.Time) (string, time.Time, bool) {
	return r.resolve(line, now)
}

// A rule result outside the storable range counts as no match for that rule.
func (r *Recognizer) resolve(line string, now time.Time) (string, time.Time, bool) {
	lower := strings.ToLower(line)
	today := notification.StartOfDay(now)
	for _, rule := range r.rules {
		date, ok := rule.Resolve(lower, today)
		if !ok {
			continue
		}
		date = notification.StartOfDay(date)
		if !storable(date) {
			continue
		}
		return rule.Name, date, true
	}
	return "", time.Time{}, false
}

// storable reports whether date has a four-digit year both locally and in
// UTC, the range that JSON encoding and the stored ISO layout accept.
func storable(date time.Time) bool {
	const minYear, maxYear = 0, 9999
	local, utc := date.Year(), date.UTC().Year()
	return local >= minYear && local <= maxYear && utc >= minYear && utc <= maxYear
}

func offsetKeyword(keyword string, days int) func(string, time.Time) (time.Time, bool) {
	return func(line string, today time.Time) (time.Time, bool) {
		if !strings.Contains(line, keyword) {
			return time.Time{}, false
		}
		return today.AddDate(0, 0, days), true
	}
}

func resolveWeekday(line string, today time.Time) (time.Time, bool) {
	for _, wd := range weekdayNames {
		if !strings.Contains(line, wd.name) {
			continue
		}
		diff := int(wd.day) - int(today.Weekday())
		if diff <= 0 {
			diff += 7
		}
		return today.AddDate(0, 0, diff), true
	}
	return time.Time{}, false
}

// maxDurationAmount bounds N in "in N days|weeks|months" well past the
// storable year range, keeping N*7 and N months from overflowing.
const maxDurationAmount = 10_000 * 366

func resolveInDuration(line string, today time.Time) (time.Time, bool) {
	m := inDurationPattern.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > maxDurationAmount {
		return time.Time{}, false
	}
	switch {
	case strings.HasPrefix(m[2], "day"):
		return today.AddDate(0, 0, n), true
	case strings.HasPrefix(m[2], "week"):
		return today.AddDate(0, 0, n*7), true
	default:
		return today.AddDate(0, n, 0), true
	}
}

func monthNameRule(honorYear bool) func(string, time.Time) (time.Time, bool) {
	return func(line string, today time.Time) (time.Time, bool) {
		var monthName, dayText, yearText string
		if m := monthDayPattern.FindStringSubmatch(line); m != nil {
			monthName, dayText, yearText = m[1], m[2], m[3]
		} else if m := dayMonthPattern.FindStringSubmatch(line); m != nil {
			dayText, monthName, yearText = m[1], m[2], m[3]
		} else {
			return time.Time{}, false
		}

		month, ok := monthFromName(monthName)
		if !ok {
			return time.Time{}, false
		}
		day, err := strconv.Atoi(dayText)
		if err != nil {
			return time.Time{}, false
		}
		year := today.Year()
		if honorYear && yearText != "" {
			if y, err := strconv.Atoi(yearText); err == nil {
				year = y
			}
		}
		return time.Date(year, month, day, 0, 0, 0, 0, today.Location()), true
	}
}

func resolveISODate(line string, today time.Time) (time.Time, bool) {
	m := isoDatePattern.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location()), true
}
