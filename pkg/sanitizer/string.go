package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims the string and collapses any run of whitespace
// (tabs and newlines included) into a single space.
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

// NormalizeName cleans up a customer name. Case and punctuation are
// preserved; names are display text, not identifiers.
func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeDescription cleans up a room description.
func NormalizeDescription(desc string) string {
	return TrimAndNormalize(desc)
}
