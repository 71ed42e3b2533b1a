package ui

import "strings"

// TruncateWithEllipsis shortens s to max runes, appending "…" when it was
// cut.
func TruncateWithEllipsis(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// PadRight pads s with spaces to width runes. Longer strings pass through
// unchanged.
func PadRight(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
