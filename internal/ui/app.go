package ui

import (
	"context"
	"log"

	"gridedit/internal/grid"
	"gridedit/internal/trace"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// ToggleHelpMsg switches between the short and full help bar.
type ToggleHelpMsg struct{}

// Options configures NewAppModel.
type Options struct {
	ShowPosition bool
	Mouse        bool
	Recorder     *trace.Recorder // nil disables tracing
}

// AppModel is the root model: the grid view plus browse-mode keybinds.
type AppModel struct {
	Grid       *GridView
	KeyHandler *KeyHandler
	Recorder   *trace.Recorder
	help       help.Model
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model over ctrl and hooks transition logging
// and tracing into it.
func NewAppModel(ctrl *grid.Controller, opts Options) *AppModel {
	reg := NewKeybindRegistry()
	addRow := func() tea.Msg { return AddRowMsg{} }
	toggleHelp := func() tea.Msg { return ToggleHelpMsg{} }
	reg.BindForMode("a", addRow, "add row", ModeBrowse)
	reg.BindForMode("?", toggleHelp, "help", ModeBrowse)
	reg.BindForMode("q", tea.Quit, "quit", ModeBrowse)
	reg.BindForMode("SPC a", addRow, "add row", ModeBrowse)
	reg.BindForMode("SPC ?", toggleHelp, "help", ModeBrowse)
	reg.BindForMode("SPC q", tea.Quit, "quit", ModeBrowse)
	// Editors never consume ctrl+n, so it adds a row from any mode.
	reg.Bind("ctrl+n", addRow, "add row")

	recorder := opts.Recorder
	record := recorder.Hook(context.Background(), ctrl.Grid())
	ctrl.OnChange = func(t grid.Transition) {
		log.Printf("focus %s -> %s (%s %s)", t.From, t.To, t.Cause, t.Key)
		record(t)
	}

	view := NewGridView(ctrl)
	view.ShowPosition = opts.ShowPosition
	view.Mouse = opts.Mouse

	return &AppModel{
		Grid:       view,
		KeyHandler: NewKeyHandler(reg),
		Recorder:   recorder,
		help:       newHelpModel(),
	}
}

// Mode is the current application mode.
func (a *AppModel) Mode() AppMode {
	return a.Grid.Mode()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Grid.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
	case ToggleHelpMsg:
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case AddRowMsg:
		log.Printf("add row (%d rows)", a.Grid.Controller().Grid().Len()+1)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// Bindings are mode filtered; in edit mode only the few that apply
		// everywhere are consumed and the rest reach the cell editor.
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
				return a, cmd
			}
		}
	}

	v, cmd := a.Grid.Update(msg)
	if gv, ok := v.(*GridView); ok {
		a.Grid = gv
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Grid.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return base + "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	return base + "\n" + a.help.View(KeyMapFor(a.Mode(), a.registry()))
}

func (a *AppModel) registry() *KeybindRegistry {
	if a.KeyHandler == nil {
		return nil
	}
	return a.KeyHandler.Registry
}
