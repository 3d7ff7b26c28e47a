package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the terminal cell width of s with ANSI escape
// sequences stripped. Wide runes (CJK, emoji) count as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// TruncateVisible shortens s to at most maxWidth cells, appending tail
// if anything was cut. ANSI sequences in s are preserved.
func TruncateVisible(s string, maxWidth int, tail string) string {
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, tail)
}

// PadToWidth right-pads s with spaces to exactly width cells,
// truncating first if s is already wider.
func PadToWidth(s string, width int) string {
	if width < 1 {
		return ""
	}
	w := VisibleWidth(s)
	if w > width {
		s = TruncateVisible(s, width, "")
		w = VisibleWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// FirstGraphemes returns the first n grapheme clusters of s. Unlike a
// rune slice this keeps emoji and combining sequences intact.
func FirstGraphemes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	gr := uniseg.NewGraphemes(s)
	var b strings.Builder
	for i := 0; i < n && gr.Next(); i++ {
		b.WriteString(gr.Str())
	}
	return b.String()
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
