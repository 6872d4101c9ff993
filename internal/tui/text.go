package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to maxWidth display cells, ending in "..." when there
// is room for it. A maxWidth <= 0 leaves s untouched; the list has no width
// until the first resize.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth > 3 {
		return runewidth.Truncate(s, maxWidth-3, "") + "..."
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	if vw := runewidth.StringWidth(s); vw < width {
		return s + strings.Repeat(" ", width-vw)
	}
	return s
}
