package ui

import (
	"gridedit/internal/grid"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// editKeyMap holds the navigation keys active while a cell is editing.
type editKeyMap struct {
	Confirm key.Binding
	Advance key.Binding
	Right   key.Binding
	Left    key.Binding
	Up      key.Binding
	Down    key.Binding
}

var editKeys = editKeyMap{
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Advance: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
	Right:   key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "right")),
	Left:    key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "left")),
	Up:      key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "up")),
	Down:    key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "down")),
}

// ShortHelp implements help.KeyMap.
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Advance, k.Right, k.Left, k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Advance}, {k.Right, k.Left, k.Up, k.Down}}
}

// navKey maps a key press to the focus controller key; anything that is not
// navigation is grid.KeyOther and belongs to the cell editor.
func navKey(msg tea.KeyMsg) grid.Key {
	switch {
	case key.Matches(msg, editKeys.Confirm):
		return grid.KeyEnter
	case key.Matches(msg, editKeys.Advance):
		return grid.KeyTab
	case key.Matches(msg, editKeys.Right):
		return grid.KeyCtrlRight
	case key.Matches(msg, editKeys.Left):
		return grid.KeyCtrlLeft
	case key.Matches(msg, editKeys.Up):
		return grid.KeyCtrlUp
	case key.Matches(msg, editKeys.Down):
		return grid.KeyCtrlDown
	default:
		return grid.KeyOther
	}
}

// browseKeyMap moves the browse cursor and opens the cursor cell.
type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
}

var browseKeys = browseKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Activate: key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit")),
}
