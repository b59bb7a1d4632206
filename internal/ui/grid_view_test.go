package ui

import (
	"strings"
	"testing"

	"gridedit/internal/grid"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGridView() *GridView {
	return NewGridView(grid.NewController(grid.New(grid.DefaultSchema())))
}

func focusOf(v *GridView) grid.Point {
	return v.Controller().Focus()
}

func requireOneEditing(t *testing.T, v *GridView) {
	t.Helper()
	cells := v.Controller().Grid().EditingCells()
	if v.Controller().Focused() {
		require.Equal(t, []grid.Point{focusOf(v)}, cells)
		require.NotNil(t, v.editor, "focused cell must have a live editor")
		if te, ok := v.editor.(*textEditor); ok {
			require.True(t, te.input.Focused(), "text box must hold keyboard focus")
		}
	} else {
		require.Empty(t, cells)
		require.Nil(t, v.editor)
	}
}

func TestGridView_TabScenario(t *testing.T) {
	v := newTestGridView()

	v.Update(ActivateCellMsg{Point: grid.Point{Row: 0, Col: 0}})
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, focusOf(v))
	assert.IsType(t, &textEditor{}, v.editor)

	v.Update(keyMsg("tab"))
	assert.Equal(t, grid.Point{Row: 0, Col: 1}, focusOf(v))
	assert.IsType(t, &choiceEditor{}, v.editor, "title_2 is fixed-choice")

	v.Update(keyMsg("tab"))
	assert.Equal(t, grid.Point{Row: 0, Col: 2}, focusOf(v))

	v.Update(keyMsg("tab"))
	assert.Equal(t, grid.None, focusOf(v))
	requireOneEditing(t, v)

	v.Update(AddRowMsg{})
	assert.Equal(t, 2, v.Controller().Grid().Len())

	v.Update(ActivateCellMsg{Point: grid.Point{Row: 0, Col: 2}})
	v.Update(keyMsg("tab"))
	assert.Equal(t, grid.Point{Row: 1, Col: 0}, focusOf(v))
	requireOneEditing(t, v)
}

func TestGridView_TypingUpdatesCell(t *testing.T) {
	v := newTestGridView()
	v.Update(ActivateCellMsg{Point: grid.Point{Row: 0, Col: 0}})

	typeText(v, "23")
	val, _ := v.Controller().Grid().Value(0, 0)
	assert.Equal(t, "123", val, "editor starts with the cell value")

	v.Update(keyMsg("backspace"))
	val, _ = v.Controller().Grid().Value(0, 0)
	assert.Equal(t, "12", val)

	v.Update(keyMsg("enter"))
	assert.Equal(t, grid.None, focusOf(v))
	val, _ = v.Controller().Grid().Value(0, 0)
	assert.Equal(t, "12", val, "confirm keeps the edited value")
	requireOneEditing(t, v)
}

func TestGridView_ChoiceEditor(t *testing.T) {
	v := newTestGridView()
	v.Update(ActivateCellMsg{Point: grid.Point{Row: 0, Col: 1}})

	v.Update(keyMsg("down"))
	val, _ := v.Controller().Grid().Value(0, 1)
	assert.Equal(t, "3", val)

	v.Update(keyMsg("up"))
	v.Update(keyMsg("up"))
	val, _ = v.Controller().Grid().Value(0, 1)
	assert.Equal(t, "1", val)

	v.Update(keyMsg("up"))
	val, _ = v.Controller().Grid().Value(0, 1)
	assert.Equal(t, "1", val, "clamped at the first option")

	typeText(v, "4")
	val, _ = v.Controller().Grid().Value(0, 1)
	assert.Equal(t, "4", val)
	assert.Equal(t, grid.Point{Row: 0, Col: 1}, focusOf(v), "choosing does not move focus")
}

func TestGridView_CtrlArrows(t *testing.T) {
	v := newTestGridView()
	v.Update(AddRowMsg{})
	v.Update(ActivateCellMsg{Point: grid.Point{Row: 0, Col: 0}})

	v.Update(keyMsg("ctrl+left"))
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, focusOf(v), "left edge")
	v.Update(keyMsg("ctrl+up"))
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, focusOf(v), "top edge")

	v.Update(keyMsg("ctrl+down"))
	assert.Equal(t, grid.Point{Row: 1, Col: 0}, focusOf(v))
	v.Update(keyMsg("ctrl+down"))
	assert.Equal(t, grid.Point{Row: 1, Col: 0}, focusOf(v), "bottom edge")

	v.Update(keyMsg("ctrl+right"))
	v.Update(keyMsg("ctrl+right"))
	v.Update(keyMsg("ctrl+right"))
	assert.Equal(t, grid.Point{Row: 1, Col: 2}, focusOf(v), "right edge")
	requireOneEditing(t, v)
}

func TestGridView_BrowseCursor(t *testing.T) {
	v := newTestGridView()
	v.Update(AddRowMsg{})

	v.Update(keyMsg("l"))
	v.Update(keyMsg("right"))
	v.Update(keyMsg("right"))
	assert.Equal(t, grid.Point{Row: 0, Col: 2}, v.Cursor(), "cursor clamps at the last column")
	v.Update(keyMsg("j"))
	v.Update(keyMsg("down"))
	assert.Equal(t, grid.Point{Row: 1, Col: 2}, v.Cursor())
	assert.Equal(t, ModeBrowse, v.Mode())

	v.Update(keyMsg("enter"))
	assert.Equal(t, grid.Point{Row: 1, Col: 2}, focusOf(v))
	assert.Equal(t, ModeEdit, v.Mode())

	v.Update(keyMsg("enter"))
	assert.Equal(t, grid.Point{Row: 1, Col: 2}, v.Cursor(), "cursor stays on the confirmed cell")
}

func TestGridView_MouseClickActivates(t *testing.T) {
	v := newTestGridView()
	v.Update(AddRowMsg{})
	gutter, widths := v.layout()

	// Second column of the second data row.
	x := gutter + 1 + widths[0] + len([]rune(cellSep))
	v.Update(tea.MouseMsg{X: x, Y: firstRowY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, focusOf(v))

	// Header row is not a cell.
	v.Update(tea.MouseMsg{X: x, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, focusOf(v))

	// Release events are ignored.
	v.Update(tea.MouseMsg{X: gutter + 1, Y: firstRowY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, focusOf(v))

	v.Mouse = false
	v.Update(tea.MouseMsg{X: gutter + 1, Y: firstRowY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, focusOf(v), "mouse disabled")
}

func TestGridView_CellAt(t *testing.T) {
	v := newTestGridView()
	gutter, widths := v.layout()
	start := gutter + 1

	p, ok := v.CellAt(start, firstRowY)
	assert.True(t, ok)
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, p)

	_, ok = v.CellAt(start+widths[0], firstRowY)
	assert.False(t, ok, "separator")

	_, ok = v.CellAt(0, firstRowY)
	assert.False(t, ok, "row number gutter")

	_, ok = v.CellAt(start, firstRowY+1)
	assert.False(t, ok, "below the last row")
}

func TestGridView_View(t *testing.T) {
	v := newTestGridView()

	out := v.View()
	assert.Contains(t, out, "title_1")
	assert.Contains(t, out, "title_3")
	assert.Contains(t, out, "Current position -1, -1")

	v.Update(ActivateCellMsg{Point: grid.Point{Row: 0, Col: 1}})
	out = v.View()
	assert.Contains(t, out, "Current position 0, 1")
	assert.Contains(t, out, "[2]", "dropdown marks the current option")

	v.ShowPosition = false
	assert.NotContains(t, v.View(), "Current position")
}

func TestGridView_ViewRowsAligned(t *testing.T) {
	v := newTestGridView()
	v.Controller().Grid().SetValue(0, 0, "a much longer value")
	v.Update(AddRowMsg{})

	lines := strings.Split(strings.TrimRight(v.View(), "\n"), "\n")
	header, row1, row2 := lines[1], lines[firstRowY], lines[firstRowY+1]
	assert.Equal(t, strings.Index(header, "│"), strings.Index(row1, "│"))
	assert.Equal(t, strings.Index(row1, "│"), strings.Index(row2, "│"))
}

func TestChoiceEditor_ValueOutsideOptions(t *testing.T) {
	col := grid.DefaultSchema().Column(1)

	e := newChoiceEditor(col, "7")
	assert.Equal(t, -1, e.selected)
	assert.NotContains(t, e.View(), "[")

	value, changed, _ := e.Update(keyMsg("up"))
	assert.True(t, changed)
	assert.Equal(t, "1", value, "up picks the first option")

	e = newChoiceEditor(col, "3")
	assert.Equal(t, 2, e.selected)
}
