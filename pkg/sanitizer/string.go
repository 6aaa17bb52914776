// Package sanitizer normalizes free-text user input before it is forwarded
// to the booking backend.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims surrounding whitespace and collapses internal runs
// of whitespace into single spaces.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeTeamName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeSearchQuery lowercases in addition to whitespace normalization;
// the user directory matches case-insensitively.
func NormalizeSearchQuery(q string) string {
	return strings.ToLower(TrimAndNormalize(q))
}
