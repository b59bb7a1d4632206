package ui

import (
	"fmt"
	"strconv"
	"strings"

	"gridedit/internal/grid"
	"gridedit/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AddRowMsg appends a row to the grid.
type AddRowMsg struct{}

// ActivateCellMsg makes a cell the editing cell.
type ActivateCellMsg struct {
	Point grid.Point
}

const (
	maxCellWidth = 24
	cellSep      = " │ "
	firstRowY    = 3 // title, header and rule lines come first
)

// GridView renders the grid and turns keys and clicks into focus transitions.
type GridView struct {
	ctrl   *grid.Controller
	editor CellEditor // live control of the focused cell; nil while browsing
	cursor grid.Point // browse cursor, follows the focused cell

	ShowPosition bool
	Mouse        bool
}

// Ensure GridView implements View.
var _ View = (*GridView)(nil)

// NewGridView creates a view over ctrl with the browse cursor on the first cell.
func NewGridView(ctrl *grid.Controller) *GridView {
	v := &GridView{ctrl: ctrl, cursor: grid.Point{}, ShowPosition: true, Mouse: true}
	if ctrl.Focused() {
		v.syncEditor()
	}
	return v
}

// Controller returns the focus controller behind the view.
func (v *GridView) Controller() *grid.Controller {
	return v.ctrl
}

// Mode reports whether a cell is being edited.
func (v *GridView) Mode() AppMode {
	if v.ctrl.Focused() {
		return ModeEdit
	}
	return ModeBrowse
}

// Cursor returns the browse cursor.
func (v *GridView) Cursor() grid.Point {
	return v.cursor
}

// Init implements View.
func (v *GridView) Init() tea.Cmd {
	if v.editor != nil {
		return v.editor.Focus()
	}
	return nil
}

// Update implements View.
func (v *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case AddRowMsg:
		v.ctrl.AppendRow()
		return v, nil
	case ActivateCellMsg:
		return v, v.activate(msg.Point)
	case tea.MouseMsg:
		if !v.Mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		if p, ok := v.CellAt(msg.X, msg.Y); ok {
			return v, v.activate(p)
		}
		return v, nil
	case tea.KeyMsg:
		if v.ctrl.Focused() {
			return v, v.updateEditing(msg)
		}
		return v, v.updateBrowsing(msg)
	}
	return v, nil
}

func (v *GridView) activate(p grid.Point) tea.Cmd {
	if !v.ctrl.Activate(p) {
		return nil
	}
	return v.syncEditor()
}

func (v *GridView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	if k := navKey(msg); k.IsNavigation() {
		if _, moved := v.ctrl.HandleKey(k); moved {
			return v.syncEditor()
		}
		return nil
	}
	var focusCmd tea.Cmd
	if v.editor == nil {
		focusCmd = v.syncEditor()
	}
	value, changed, cmd := v.editor.Update(msg)
	if changed {
		v.ctrl.SetFocusedValue(value)
	}
	return tea.Batch(focusCmd, cmd)
}

func (v *GridView) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	shape := v.ctrl.Grid().Shape()
	next := v.cursor
	switch {
	case key.Matches(msg, browseKeys.Up):
		next.Row--
	case key.Matches(msg, browseKeys.Down):
		next.Row++
	case key.Matches(msg, browseKeys.Left):
		next.Col--
	case key.Matches(msg, browseKeys.Right):
		next.Col++
	case key.Matches(msg, browseKeys.Activate):
		return v.activate(v.cursor)
	default:
		return nil
	}
	if shape.Contains(next) {
		v.cursor = next
	}
	return nil
}

// syncEditor rebuilds the editor for the focused cell and focuses it, so the
// next render already shows the live control.
func (v *GridView) syncEditor() tea.Cmd {
	focus := v.ctrl.Focus()
	if !focus.Valid() {
		v.editor = nil
		return nil
	}
	v.cursor = focus
	g := v.ctrl.Grid()
	value, _ := g.Value(focus.Row, focus.Col)
	v.editor = newCellEditor(g.Schema().Column(focus.Col), value)
	return v.editor.Focus()
}

// layout computes the gutter width and per-column widths for the current state.
func (v *GridView) layout() (gutter int, widths []int) {
	g := v.ctrl.Grid()
	gutter = len(strconv.Itoa(g.Len())) + 1
	widths = make([]int, len(g.Columns()))
	for c, col := range g.Columns() {
		widths[c] = max(1, textutil.VisualWidth(textutil.Truncate(col.Name, maxCellWidth)))
	}
	for _, row := range g.Rows() {
		for c, cell := range row.Cells {
			w := textutil.VisualWidth(textutil.Truncate(cell.Value, maxCellWidth))
			widths[c] = max(widths[c], w)
		}
	}
	if focus := v.ctrl.Focus(); v.editor != nil && focus.Valid() {
		widths[focus.Col] = max(widths[focus.Col], textutil.VisualWidthStyled(v.editor.View()))
	}
	return gutter, widths
}

// CellAt maps screen coordinates relative to the view origin to a data cell.
// Row numbers, separators and the header do not map to a cell.
func (v *GridView) CellAt(x, y int) (grid.Point, bool) {
	g := v.ctrl.Grid()
	row := y - firstRowY
	if row < 0 || row >= g.Len() {
		return grid.None, false
	}
	gutter, widths := v.layout()
	x -= gutter + 1
	if x < 0 {
		return grid.None, false
	}
	sep := textutil.VisualWidth(cellSep)
	for c, w := range widths {
		if x < w {
			return grid.Point{Row: row, Col: c}, true
		}
		x -= w
		if x < sep {
			return grid.None, false
		}
		x -= sep
	}
	return grid.None, false
}

// View implements View.
func (v *GridView) View() string {
	g := v.ctrl.Grid()
	gutter, widths := v.layout()
	sep := Styles.Muted.Render(cellSep)
	focus := v.ctrl.Focus()

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Grid (%d rows)", g.Len())) + "\n")

	header := make([]string, len(widths))
	total := 0
	for c, col := range g.Columns() {
		header[c] = Styles.Header.Render(textutil.PadRight(col.Name, widths[c]))
		total += widths[c]
	}
	total += textutil.VisualWidth(cellSep) * (len(widths) - 1)
	b.WriteString(strings.Repeat(" ", gutter+1) + strings.Join(header, sep) + "\n")
	b.WriteString(strings.Repeat(" ", gutter+1) + Styles.Muted.Render(strings.Repeat("─", total)) + "\n")

	for r, row := range g.Rows() {
		cells := make([]string, len(row.Cells))
		for c, cell := range row.Cells {
			p := grid.Point{Row: r, Col: c}
			switch {
			case cell.Editing && v.editor != nil:
				cells[c] = textutil.PadRightStyled(v.editor.View(), widths[c])
			case !focus.Valid() && p == v.cursor:
				cells[c] = Styles.Cursor.Render(textutil.PadRight(cell.Value, widths[c]))
			default:
				cells[c] = Styles.Cell.Render(textutil.PadRight(cell.Value, widths[c]))
			}
		}
		num := Styles.Muted.Render(textutil.PadLeft(strconv.Itoa(r+1), gutter))
		b.WriteString(num + " " + strings.Join(cells, sep) + "\n")
	}

	if v.ShowPosition {
		b.WriteString("\n" + Styles.Status.Render(fmt.Sprintf("Current position %d, %d", focus.Row, focus.Col)) + "\n")
	}
	return b.String()
}
