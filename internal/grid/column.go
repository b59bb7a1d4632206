package grid

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Kind is the editor widget a column uses for its editing cell.
type Kind int

const (
	KindFreeText Kind = iota
	KindFixedChoice
)

var kindNames = map[Kind]string{
	KindFreeText:    "free-text",
	KindFixedChoice: "fixed-choice",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var (
	ErrUnknownKind     = errors.New("unknown column kind")
	ErrNoColumns       = errors.New("schema has no columns")
	ErrEmptyColumnName = errors.New("column name is empty")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrNoOptions       = errors.New("fixed-choice column has no options")
)

// ParseKind parses "free-text" or "fixed-choice". On failure the error names
// the closest valid kind.
func ParseKind(s string) (Kind, error) {
	best, bestDist := "", -1
	for _, k := range []Kind{KindFreeText, KindFixedChoice} {
		name := kindNames[k]
		if s == name {
			return k, nil
		}
		d := levenshtein.ComputeDistance(s, name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKind, s, best)
}

// Column describes one fixed column of the grid.
type Column struct {
	Name    string
	Kind    Kind
	Options []string // fixed-choice only
	Default string   // value of this column in a freshly appended row
}

// OptionIndex returns the position of v in the column options, or -1.
func (c Column) OptionIndex(v string) int {
	for i, o := range c.Options {
		if o == v {
			return i
		}
	}
	return -1
}

// Schema is the ordered, validated column set shared by every row.
type Schema struct {
	columns []Column
}

// NewSchema validates cols and returns a schema owning a copy of them.
func NewSchema(cols []Column) (Schema, error) {
	if len(cols) == 0 {
		return Schema{}, ErrNoColumns
	}
	seen := make(map[string]bool, len(cols))
	out := make([]Column, len(cols))
	for i, c := range cols {
		if c.Name == "" {
			return Schema{}, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if seen[c.Name] {
			return Schema{}, fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)
		}
		seen[c.Name] = true
		if c.Kind == KindFixedChoice && len(c.Options) == 0 {
			return Schema{}, fmt.Errorf("column %q: %w", c.Name, ErrNoOptions)
		}
		c.Options = append([]string(nil), c.Options...)
		out[i] = c
	}
	return Schema{columns: out}, nil
}

// DefaultSchema is the three-column sample table.
func DefaultSchema() Schema {
	s, err := NewSchema([]Column{
		{Name: "title_1", Kind: KindFreeText, Default: "1"},
		{Name: "title_2", Kind: KindFixedChoice, Options: []string{"1", "2", "3", "4"}, Default: "2"},
		{Name: "title_3", Kind: KindFreeText, Default: "3"},
	})
	if err != nil {
		panic(err)
	}
	return s
}

// Columns returns the columns in display order.
func (s Schema) Columns() []Column {
	return s.columns
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.columns)
}

// Column returns column i. It panics when i is out of range.
func (s Schema) Column(i int) Column {
	return s.columns[i]
}
