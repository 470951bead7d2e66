package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxDescriptionRunes = 100

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Describe returns the sentence of content that contains line, or a
// truncated prefix of content when no sentence does.
func Describe(content, line string) string {
	needle := strings.ToLower(strings.TrimSpace(line))
	if needle != "" {
		for _, sentence := range sentenceSplit.Split(content, -1) {
			if strings.Contains(strings.ToLower(sentence), needle) {
				return truncate(strings.TrimSpace(sentence))
			}
		}
	}
	return truncate(content)
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxDescriptionRunes {
		return s
	}
	return string([]rune(s)[:maxDescriptionRunes]) + "..."
}
