package grid

import "fmt"

// Point addresses a cell. None means no cell is focused.
type Point struct {
	Row int
	Col int
}

// None is the unfocused point.
var None = Point{Row: -1, Col: -1}

// Valid reports whether p addresses a cell (both indices non-negative).
func (p Point) Valid() bool {
	return p.Row >= 0 && p.Col >= 0
}

func (p Point) String() string {
	if !p.Valid() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Key is a navigation key as seen by the focus controller.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyTab
	KeyCtrlRight
	KeyCtrlLeft
	KeyCtrlUp
	KeyCtrlDown
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyCtrlRight:
		return "ctrl+right"
	case KeyCtrlLeft:
		return "ctrl+left"
	case KeyCtrlUp:
		return "ctrl+up"
	case KeyCtrlDown:
		return "ctrl+down"
	default:
		return "other"
	}
}

// IsNavigation reports whether k moves or clears focus.
func (k Key) IsNavigation() bool {
	return k != KeyOther
}

// NextFocus computes where focus goes when key is pressed on cur.
//
// Enter always unfocuses. Tab walks row-major and unfocuses after the last
// cell instead of wrapping. Ctrl+Arrow moves one step and is clamped at the
// edges, so it never unfocuses.
func NextFocus(cur Point, key Key, shape Shape) Point {
	if !shape.Contains(cur) {
		return cur
	}
	next := cur
	switch key {
	case KeyEnter:
		return None
	case KeyTab:
		switch {
		case cur.Col+1 < shape.Cols:
			next.Col++
		case cur.Row+1 < shape.Rows:
			next.Row++
			next.Col = 0
		default:
			return None
		}
	case KeyCtrlRight:
		if cur.Col+1 < shape.Cols {
			next.Col++
		}
	case KeyCtrlLeft:
		if cur.Col > 0 {
			next.Col--
		}
	case KeyCtrlUp:
		if cur.Row > 0 {
			next.Row--
		}
	case KeyCtrlDown:
		if cur.Row+1 < shape.Rows {
			next.Row++
		}
	}
	return next
}
