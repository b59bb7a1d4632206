// Package textutil provides unicode-aware text utilities for laying out table cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the width of a string that may carry ANSI styling.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRight pads a plain string with spaces to width columns, truncating it
// first when it is wider.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// PadRightStyled pads a styled string with spaces to width columns. Styled
// strings are never truncated.
func PadRightStyled(s string, width int) string {
	if w := VisualWidthStyled(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft right-aligns a plain string in width columns.
func PadLeft(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillLeft(s, width)
}
