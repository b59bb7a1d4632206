package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, header row
	ColorHighlight = "205" // Magenta - editing cell, selected option
	ColorMuted     = "241" // Gray - separators, hints
	ColorText      = "252" // Light gray - static cell text
	ColorCursor    = "62"  // Blue - browse cursor background
)

// Styles contains the shared style definitions.
var Styles = struct {
	Title    lipgloss.Style // Bold accent - view title
	Header   lipgloss.Style // Column header cells
	Cell     lipgloss.Style // Static cell text
	Cursor   lipgloss.Style // Static cell under the browse cursor
	Editing  lipgloss.Style // Text inside the editing cell
	Selected lipgloss.Style // Selected dropdown option, text cursor
	Muted    lipgloss.Style // Separators, unselected options, row numbers
	Hint     lipgloss.Style // Help text
	Status   lipgloss.Style // Position line
	HelpBox  lipgloss.Style // Leader help box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Cell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorCursor)),
	Editing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}
