package pagemirror

import (
	"strings"
	"unicode"
)

// Sanitize reduces s to characters that are safe in file and directory names:
// letters, digits, space, '.', '_' and '-'. Trailing whitespace is trimmed.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isFileSafe(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

func isFileSafe(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case ' ', '.', '_', '-':
		return true
	}
	return false
}
