package extract

import (
	"regexp"
	"strings"
	"time"
)

// Full month names come before abbreviations so leftmost-first alternation
// consumes the whole word.
const monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

var (
	inDurationPattern = regexp.MustCompile(`(?i)in\s+(\d+)\s+(day|days|week|weeks|month|months)`)

	monthDayPattern = regexp.MustCompile(`(?i)\b(` + monthAlternation + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`)
	dayMonthPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlternation + `)\b\.?(?:,?\s+(\d{4})\b)?`)

	isoDatePattern = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	numericDatePattern = regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`)
	timePattern        = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|\b\d{1,2}:\d{2}\b`)
	clockPattern       = regexp.MustCompile(`\d{1,2}:\d{2}`)
)

var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}

// monthFromName maps a full or abbreviated month name to its time.Month.
func monthFromName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	if name == "sept" {
		return time.September, true
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, true
		}
	}
	return 0, false
}

// HasNumericDate reports whether line carries a slash, dash or dot separated
// numeric date such as 01/15/2024. Such dates are not resolved.
func HasNumericDate(line string) bool {
	return numericDatePattern.MatchString(line)
}

// HasTime reports whether line carries a time of day such as 3:30 or 3pm.
func HasTime(line string) bool {
	return timePattern.MatchString(line)
}
