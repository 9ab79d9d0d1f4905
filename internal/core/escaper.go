package core

import "strings"

// Escape prefixes every character helm's --set parser treats as syntax with a
// backslash. It runs once per value, at emission time.
func Escape(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 8)

	for _, r := range value {
		switch r {
		case ',', '.', '{', '}', '[', ']':
			b.WriteRune('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
