// Package grid holds the editable table state: an append-only row store over a
// fixed column schema, and the focus controller deciding which single cell is
// being edited.
//
// The Grid is owned by one goroutine (the UI event loop) and mutated in place.
// Callers that need a stable copy take a Clone.
package grid

import "github.com/google/uuid"

// Cell is one column's state within a row.
type Cell struct {
	Value   string
	Editing bool
}

// Row is an ordered set of cells, one per schema column.
type Row struct {
	ID    uuid.UUID
	Cells []Cell
}

// Shape is the grid size the focus math works on.
type Shape struct {
	Rows int
	Cols int
}

// Contains reports whether p addresses a cell inside the shape.
func (s Shape) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Grid is an append-only sequence of rows sharing one schema.
type Grid struct {
	schema Schema
	rows   []Row
}

// New returns a grid with a single row of column defaults.
func New(schema Schema) *Grid {
	g := &Grid{schema: schema}
	g.AppendRow()
	return g
}

// AppendRow adds a row of column defaults with no editing cell and returns
// its index.
func (g *Grid) AppendRow() int {
	cells := make([]Cell, g.schema.Len())
	for i, c := range g.schema.Columns() {
		cells[i] = Cell{Value: c.Default}
	}
	g.rows = append(g.rows, Row{ID: uuid.New(), Cells: cells})
	return len(g.rows) - 1
}

// SetValue replaces the text of one cell. Out-of-range indices are ignored
// and reported as false.
func (g *Grid) SetValue(row, col int, value string) bool {
	if !g.Shape().Contains(Point{Row: row, Col: col}) {
		return false
	}
	g.rows[row].Cells[col].Value = value
	return true
}

// Value returns the text of one cell.
func (g *Grid) Value(row, col int) (string, bool) {
	c, ok := g.Cell(row, col)
	return c.Value, ok
}

// Cell returns a copy of one cell.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.Shape().Contains(Point{Row: row, Col: col}) {
		return Cell{}, false
	}
	return g.rows[row].Cells[col], true
}

// Row returns row i, or false when out of range.
func (g *Grid) Row(i int) (Row, bool) {
	if i < 0 || i >= len(g.rows) {
		return Row{}, false
	}
	return g.rows[i], true
}

// Rows returns the live rows. Callers must not mutate them.
func (g *Grid) Rows() []Row {
	return g.rows
}

// Schema returns the column schema.
func (g *Grid) Schema() Schema {
	return g.schema
}

// Columns returns the schema columns.
func (g *Grid) Columns() []Column {
	return g.schema.Columns()
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

func (g *Grid) Shape() Shape {
	return Shape{Rows: len(g.rows), Cols: g.schema.Len()}
}

// EditingCells lists every cell whose editing flag is set, in row-major order.
func (g *Grid) EditingCells() []Point {
	var out []Point
	for r, row := range g.rows {
		for c, cell := range row.Cells {
			if cell.Editing {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	rows := make([]Row, len(g.rows))
	for i, r := range g.rows {
		rows[i] = Row{ID: r.ID, Cells: append([]Cell(nil), r.Cells...)}
	}
	return &Grid{schema: g.schema, rows: rows}
}

// setEditing flips the editing flag of a cell; out-of-range points are ignored.
func (g *Grid) setEditing(p Point, on bool) {
	if !g.Shape().Contains(p) {
		return
	}
	g.rows[p.Row].Cells[p.Col].Editing = on
}
