// Package render turns a grid and its focus point into the HTML table markup
// of the editable widget.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"gridedit/internal/grid"
)

var tableTmpl = template.Must(template.New("table").Parse(`<div class="App">
<button type="button" data-action="add-row">Add row</button>
<p>Current position {{.Focus.Row}}, {{.Focus.Col}}</p>
<table>
<tbody>
<tr>{{range .Columns}}<th>{{.Name}}</th>{{end}}</tr>
{{- range .Rows}}
<tr data-row-id="{{.ID}}">{{range .Cells}}<td data-row="{{.Row}}" data-col="{{.Col}}">
{{- if not .Editing}}<p>{{.Value}}</p>
{{- else if .Options}}<select autofocus>{{$v := .Value}}{{range .Options}}<option value="{{.}}"{{if eq . $v}} selected{{end}}>{{.}}</option>{{end}}</select>
{{- else}}<input type="text" value="{{.Value}}" autofocus>
{{- end}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</div>
`))

type cellData struct {
	Row, Col int
	Value    string
	Editing  bool
	Options  []string
}

type rowData struct {
	ID    string
	Cells []cellData
}

type tableData struct {
	Focus   grid.Point
	Columns []grid.Column
	Rows    []rowData
}

// HTML writes the table for g with the cell at focus rendered as its live
// editor control.
func HTML(w io.Writer, g *grid.Grid, focus grid.Point) error {
	cols := g.Columns()
	data := tableData{Focus: focus, Columns: cols}
	if !focus.Valid() {
		data.Focus = grid.None
	}
	for r, row := range g.Rows() {
		rd := rowData{ID: row.ID.String(), Cells: make([]cellData, len(row.Cells))}
		for c, cell := range row.Cells {
			cd := cellData{Row: r, Col: c, Value: cell.Value, Editing: cell.Editing}
			if cell.Editing && cols[c].Kind == grid.KindFixedChoice {
				cd.Options = cols[c].Options
			}
			rd.Cells[c] = cd
		}
		data.Rows = append(data.Rows, rd)
	}
	if err := tableTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// HTMLString is HTML into a string.
func HTMLString(g *grid.Grid, focus grid.Point) (string, error) {
	var b strings.Builder
	if err := HTML(&b, g, focus); err != nil {
		return "", err
	}
	return b.String(), nil
}
