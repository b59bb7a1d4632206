package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC a" for SPC then a.
// Single keys use tea.KeyMsg.String() names: "a", "q", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq for every mode, replacing an existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindForMode(seq, cmd, desc)
}

// BindForMode registers seq for the given modes only. No modes means all modes.
func (r *KeybindRegistry) BindForMode(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command for seq in mode, or nil.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string, mode AppMode) bool {
	prefix := normalizeSeq(seq) + " "
	for s, b := range r.bindings {
		if strings.HasPrefix(s, prefix) && b.appliesTo(mode) {
			return true
		}
	}
	return false
}

// Bindings returns help bindings for mode. With an empty prefix it lists the
// single-key bindings; with a prefix such as "SPC" it lists the next key of
// every sequence continuing that prefix.
func (r *KeybindRegistry) Bindings(prefix string, mode AppMode) []key.Binding {
	hints := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !b.appliesTo(mode) {
			continue
		}
		var k string
		if prefix == "" {
			if strings.Contains(seq, " ") {
				continue
			}
			k = seq
		} else {
			rest, ok := strings.CutPrefix(seq, normalizeSeq(prefix)+" ")
			if !ok {
				continue
			}
			k = strings.Fields(rest)[0]
		}
		desc := b.desc
		if desc == "" {
			desc = seq
		}
		hints[k] = desc
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return out
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to canonical form ("space" -> "SPC").
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq == " " {
		parts = []string{"SPC"}
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // true after SPC until the sequence resolves
	Buffer        []string // sequence typed so far, starting with "SPC"
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a key in mode. consumed reports whether the key belonged to
// the keybind system and must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := keyToSeqPart(msg.String())

	if s == "esc" && h.LeaderWaiting {
		h.reset()
		return true, nil
	}

	if s == "SPC" && !h.LeaderWaiting {
		if !h.Registry.HasPrefix("SPC", mode) {
			return false, nil
		}
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, s)
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, mode); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq, mode) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(s, mode); c != nil {
		return true, c
	}
	return false, nil
}

// Sequence returns the pending leader sequence, e.g. "SPC".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
