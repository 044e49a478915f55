package display

import (
	"fmt"
	"unicode/utf8"
)

func StatusIcon(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func StatusLabel(done bool) string {
	if done {
		return "Done"
	}
	return "Pending"
}

// Count formats n with word, adding an "s" unless n is 1.
func Count(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Truncate shortens s to at most width runes, ending with "…" when cut.
// A width below 1 leaves s alone.
func Truncate(s string, width int) string {
	if width < 1 || utf8.RuneCountInString(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
