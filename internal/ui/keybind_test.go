package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("SPC q", tea.Quit, "quit")
	reg.BindForMode("a", tea.Quit, "add row", ModeBrowse)

	assert.NotNil(t, reg.Lookup("q", ModeEdit))
	assert.NotNil(t, reg.Lookup("space q", ModeBrowse), "space normalizes to SPC")
	assert.NotNil(t, reg.Lookup("a", ModeBrowse))
	assert.Nil(t, reg.Lookup("a", ModeEdit), "mode filter")
	assert.Nil(t, reg.Lookup("unknown", ModeBrowse))
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), ModeBrowse)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)
	assert.Equal(t, "SPC", h.Sequence())

	consumed, cmd = h.Handle(keyMsg("x"), ModeBrowse)
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeBrowse)
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"), ModeBrowse)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeBrowse)
	consumed, cmd := h.Handle(keyMsg("j"), ModeBrowse)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SpaceWithoutLeaderBindings(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForMode("SPC x", tea.Quit, "", ModeBrowse)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg(" "), ModeEdit)
	assert.False(t, consumed, "space must reach the editor when no leader binding applies")
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeBrowse)
	assert.True(t, consumed)
	assert.NotNil(t, cmd)

	consumed, _ = h.Handle(keyMsg("j"), ModeBrowse)
	assert.False(t, consumed, "unbound j falls through")
}

func TestKeybindRegistry_Bindings(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("a", tea.Quit, "add row")
	reg.Bind("SPC a", tea.Quit, "add row")
	reg.Bind("SPC q", tea.Quit, "")

	single := reg.Bindings("", ModeBrowse)
	require.Len(t, single, 2)
	assert.Equal(t, "a", single[0].Help().Key)
	assert.Equal(t, "add row", single[0].Help().Desc)
	assert.Equal(t, "q", single[1].Help().Key)

	leader := reg.Bindings("SPC", ModeBrowse)
	require.Len(t, leader, 2)
	assert.Equal(t, "a", leader[0].Help().Key)
	assert.Equal(t, "SPC q", leader[1].Help().Desc, "missing description falls back to the sequence")
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC a", tea.Quit, "add row")
	h := NewKeyHandler(reg)

	assert.Empty(t, RenderKeybindHelp(h, ModeBrowse), "no box outside leader mode")

	h.Handle(keyMsg(" "), ModeBrowse)
	out := RenderKeybindHelp(h, ModeBrowse)
	assert.Contains(t, out, "SPC")
	assert.Contains(t, out, "add row")
	assert.Contains(t, out, "cancel")
}

// keyMsg creates a tea.KeyMsg for testing from its String() form.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+right":
		return tea.KeyMsg{Type: tea.KeyCtrlRight}
	case "ctrl+left":
		return tea.KeyMsg{Type: tea.KeyCtrlLeft}
	case "ctrl+up":
		return tea.KeyMsg{Type: tea.KeyCtrlUp}
	case "ctrl+down":
		return tea.KeyMsg{Type: tea.KeyCtrlDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText sends one rune key per character.
func typeText(v View, s string) {
	for _, r := range s {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
