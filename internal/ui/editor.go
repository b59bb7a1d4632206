package ui

import (
	"strings"

	"gridedit/internal/grid"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CellEditor is the live control shown in the editing cell.
type CellEditor interface {
	// Update handles a non-navigation key and reports the new cell value when
	// it changed.
	Update(msg tea.KeyMsg) (value string, changed bool, cmd tea.Cmd)
	// Focus grants keyboard focus to the control.
	Focus() tea.Cmd
	View() string
}

// newCellEditor builds the editor matching col's kind, bound to value.
func newCellEditor(col grid.Column, value string) CellEditor {
	if col.Kind == grid.KindFixedChoice {
		return newChoiceEditor(col, value)
	}
	return newTextEditor(value)
}

// textEditor is the free-text editor, a single-line text box.
type textEditor struct {
	input textinput.Model
}

func newTextEditor(value string) *textEditor {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(value)
	ti.CursorEnd()
	ti.TextStyle = Styles.Editing
	ti.Cursor.Style = Styles.Selected
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &textEditor{input: ti}
}

func (e *textEditor) Focus() tea.Cmd {
	return e.input.Focus()
}

func (e *textEditor) Update(msg tea.KeyMsg) (string, bool, tea.Cmd) {
	before := e.input.Value()
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	after := e.input.Value()
	return after, after != before, cmd
}

func (e *textEditor) View() string {
	return e.input.View()
}

// choiceEditor is the fixed-choice dropdown. Up/down step through the options;
// typing jumps to the next option starting with the typed text.
type choiceEditor struct {
	options  []string
	selected int // -1 while the cell holds a value outside the options
}

func newChoiceEditor(col grid.Column, value string) *choiceEditor {
	return &choiceEditor{options: col.Options, selected: col.OptionIndex(value)}
}

func (e *choiceEditor) Focus() tea.Cmd {
	return nil
}

func (e *choiceEditor) Update(msg tea.KeyMsg) (string, bool, tea.Cmd) {
	prev := e.selected
	switch msg.Type {
	case tea.KeyUp:
		if e.selected < 0 {
			e.selected = 0
		} else if e.selected > 0 {
			e.selected--
		}
	case tea.KeyDown:
		if e.selected < len(e.options)-1 {
			e.selected++
		}
	case tea.KeyHome:
		e.selected = 0
	case tea.KeyEnd:
		e.selected = len(e.options) - 1
	case tea.KeyRunes:
		e.jumpTo(strings.ToLower(string(msg.Runes)))
	}
	if e.selected == prev || e.selected < 0 {
		return "", false, nil
	}
	return e.options[e.selected], true, nil
}

// jumpTo selects the next option after the current one whose text starts
// with prefix, wrapping around.
func (e *choiceEditor) jumpTo(prefix string) {
	n := len(e.options)
	for i := 1; i <= n; i++ {
		idx := (e.selected + i + n) % n
		if strings.HasPrefix(strings.ToLower(e.options[idx]), prefix) {
			e.selected = idx
			return
		}
	}
}

func (e *choiceEditor) View() string {
	parts := make([]string, len(e.options))
	for i, o := range e.options {
		if i == e.selected {
			parts[i] = Styles.Selected.Render("[" + o + "]")
		} else {
			parts[i] = Styles.Muted.Render(" " + o + " ")
		}
	}
	return Styles.Editing.Render("▾") + strings.Join(parts, "")
}
