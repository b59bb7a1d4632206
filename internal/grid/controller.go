package grid

// Cause says what triggered a focus transition.
type Cause int

const (
	CauseActivate Cause = iota
	CauseKey
)

func (c Cause) String() string {
	if c == CauseActivate {
		return "activate"
	}
	return "key"
}

// Transition describes one applied focus change.
type Transition struct {
	From  Point
	To    Point
	Key   Key // KeyOther for activations
	Cause Cause
}

// Controller tracks the single editing cell of a grid and moves it in
// response to activations and navigation keys.
type Controller struct {
	grid     *Grid
	focus    Point
	OnChange func(Transition)
}

// NewController wraps g with nothing focused. Any editing flags already set
// on g are cleared.
func NewController(g *Grid) *Controller {
	for _, p := range g.EditingCells() {
		g.setEditing(p, false)
	}
	return &Controller{grid: g, focus: None}
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Focus returns the editing cell, or None.
func (c *Controller) Focus() Point {
	return c.focus
}

// Focused reports whether a cell is being edited.
func (c *Controller) Focused() bool {
	return c.focus.Valid()
}

// Activate makes p the editing cell. Points outside the grid are ignored.
// Activating the already focused cell is a no-op.
func (c *Controller) Activate(p Point) bool {
	if !c.grid.Shape().Contains(p) || p == c.focus {
		return false
	}
	c.apply(Transition{From: c.focus, To: p, Key: KeyOther, Cause: CauseActivate})
	return true
}

// HandleKey applies a key press to the focused cell. It returns false for
// pure no-ops: no focus, a non-navigation key, or a move clamped at an edge.
func (c *Controller) HandleKey(k Key) (Transition, bool) {
	if !c.Focused() || !k.IsNavigation() {
		return Transition{}, false
	}
	next := NextFocus(c.focus, k, c.grid.Shape())
	if next == c.focus {
		return Transition{}, false
	}
	t := Transition{From: c.focus, To: next, Key: k, Cause: CauseKey}
	c.apply(t)
	return t, true
}

// Confirm ends editing of the focused cell.
func (c *Controller) Confirm() bool {
	_, ok := c.HandleKey(KeyEnter)
	return ok
}

// AppendRow adds a row to the grid. Focus is unaffected.
func (c *Controller) AppendRow() int {
	return c.grid.AppendRow()
}

// SetFocusedValue writes value into the editing cell.
func (c *Controller) SetFocusedValue(value string) bool {
	if !c.Focused() {
		return false
	}
	return c.grid.SetValue(c.focus.Row, c.focus.Col, value)
}

func (c *Controller) apply(t Transition) {
	c.grid.setEditing(t.From, false)
	c.grid.setEditing(t.To, true)
	c.focus = t.To
	if c.OnChange != nil {
		c.OnChange(t)
	}
}
