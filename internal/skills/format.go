package skills

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune and lower-cases the rest:
// "machine learning" -> "Machine learning", "node.js" -> "Node.js".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// JoinCapitalized renders a skill list the way the ranking page shows it.
func JoinCapitalized(skills []string) string {
	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = Capitalize(s)
	}
	return strings.Join(parts, ", ")
}

// FormatPercent renders a score in [0,1] as a percentage with one decimal place.
func FormatPercent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}
