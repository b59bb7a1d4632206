package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// browseHelp lists the cursor keys plus the registry's single-key commands.
type browseHelp struct {
	registry *KeybindRegistry
}

// ShortHelp implements help.KeyMap.
func (b browseHelp) ShortHelp() []key.Binding {
	out := []key.Binding{browseKeys.Activate}
	if b.registry != nil {
		out = append(out, b.registry.Bindings("", ModeBrowse)...)
	}
	return out
}

// FullHelp implements help.KeyMap.
func (b browseHelp) FullHelp() [][]key.Binding {
	cursor := []key.Binding{browseKeys.Up, browseKeys.Down, browseKeys.Left, browseKeys.Right, browseKeys.Activate}
	cols := [][]key.Binding{cursor}
	if b.registry != nil {
		if cmds := b.registry.Bindings("", ModeBrowse); len(cmds) > 0 {
			cols = append(cols, cmds)
		}
		if leader := b.registry.Bindings("SPC", ModeBrowse); len(leader) > 0 {
			cols = append(cols, leader)
		}
	}
	return cols
}

// editHelp lists the navigation keys plus the registry commands that stay
// active while editing.
type editHelp struct {
	registry *KeybindRegistry
}

// ShortHelp implements help.KeyMap.
func (e editHelp) ShortHelp() []key.Binding {
	out := editKeys.ShortHelp()
	if e.registry != nil {
		out = append(out, e.registry.Bindings("", ModeEdit)...)
	}
	return out
}

// FullHelp implements help.KeyMap.
func (e editHelp) FullHelp() [][]key.Binding {
	cols := editKeys.FullHelp()
	if e.registry != nil {
		if cmds := e.registry.Bindings("", ModeEdit); len(cmds) > 0 {
			cols = append(cols, cmds)
		}
	}
	return cols
}

// KeyMapFor returns the help key map for mode.
func KeyMapFor(mode AppMode, registry *KeybindRegistry) help.KeyMap {
	if mode == ModeEdit {
		return editHelp{registry: registry}
	}
	return browseHelp{registry: registry}
}

// newHelpModel returns a help.Model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Selected
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = Styles.Selected
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp renders the transient box shown while a leader sequence
// is pending, listing the keys that can follow it.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	seq := keyHandler.Sequence()
	bindings := keyHandler.Registry.Bindings(seq, mode)
	if len(bindings) == 0 {
		return ""
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	h := newHelpModel()
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Render(seq)
	return Styles.HelpBox.Render(label + " " + h.ShortHelpView(bindings))
}
