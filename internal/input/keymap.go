package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stackui/internal/button"
)

// KeyMap maps terminal keys to controller buttons.
type KeyMap struct {
	bindings map[button.Button]key.Binding
	order    []button.Button
}

// DefaultKeyMap returns the stock terminal layout: arrows or hjkl for the
// D-pad, enter/esc for A/B, +/- for Plus/Minus.
func DefaultKeyMap() *KeyMap {
	m := &KeyMap{bindings: make(map[button.Button]key.Binding)}
	m.Bind(button.DUp, "up", "k")
	m.Bind(button.DDown, "down", "j")
	m.Bind(button.DLeft, "left", "h")
	m.Bind(button.DRight, "right", "l")
	m.Bind(button.A, "enter", "a")
	m.Bind(button.B, "esc", "backspace", "b")
	m.Bind(button.X, "x")
	m.Bind(button.Y, "y")
	m.Bind(button.L, "q")
	m.Bind(button.R, "e")
	m.Bind(button.ZL, "Q")
	m.Bind(button.ZR, "E")
	m.Bind(button.Plus, "+", "ctrl+c")
	m.Bind(button.Minus, "-")
	return m
}

// Bind maps keys (tea.KeyMsg.String() format) to b, replacing any previous
// binding for b. The first key is the one shown in help.
func (m *KeyMap) Bind(b button.Button, keys ...string) {
	if _, ok := m.bindings[b]; !ok {
		m.order = append(m.order, b)
	}
	m.bindings[b] = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], strings.ToLower(b.String())),
	)
}

// Lookup returns the button a key press maps to.
func (m *KeyMap) Lookup(msg tea.KeyMsg) (button.Button, bool) {
	for _, b := range m.order {
		if key.Matches(msg, m.bindings[b]) {
			return b, true
		}
	}
	return button.None, false
}

// Label returns the key shown for b, or the button name when unbound.
func (m *KeyMap) Label(b button.Button) string {
	if binding, ok := m.bindings[b]; ok {
		return binding.Help().Key
	}
	return b.String()
}

// HelpKeyMap adapts hints to bubbles/help so the footer can be rendered with
// help.Model.
type HelpKeyMap struct {
	Keys  *KeyMap
	Hints []Hint
}

var _ help.KeyMap = HelpKeyMap{}

// ShortHelp returns one binding per hint, in hint order.
func (h HelpKeyMap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(h.Hints))
	for _, hint := range h.Hints {
		label := hint.Key.String()
		if h.Keys != nil {
			label = h.Keys.Label(hint.Key)
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(label),
			key.WithHelp(label, hint.Label),
		))
	}
	return bindings
}

// FullHelp returns the short help as a single column.
func (h HelpKeyMap) FullHelp() [][]key.Binding {
	short := h.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
