// Package platform provides the input sources the frame scheduler polls: a
// terminal source fed by bubbletea key messages and a scripted source for
// headless runs.
package platform

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"stackui/internal/button"
	"stackui/internal/input"
)

// DefaultHoldTicks is how long one terminal key press keeps its button held.
// Terminals report presses and auto-repeats but never releases, so a key is
// considered held while repeats keep arriving within this many ticks.
const DefaultHoldTicks = 3

// Terminal turns terminal key presses into held controller buttons.
type Terminal struct {
	mu        sync.Mutex
	keys      *input.KeyMap
	holdTicks int
	remaining map[button.Button]int
	held      button.Button
	closed    bool
}

// NewTerminal returns a source mapping keys through km.
func NewTerminal(km *input.KeyMap, holdTicks int) *Terminal {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Terminal{
		keys:      km,
		holdTicks: holdTicks,
		remaining: make(map[button.Button]int),
	}
}

// Keys returns the key map.
func (t *Terminal) Keys() *input.KeyMap { return t.keys }

// Press records a key press. Returns false if the key maps to no button.
func (t *Terminal) Press(msg tea.KeyMsg) bool {
	b, ok := t.keys.Lookup(msg)
	if !ok {
		return false
	}
	t.mu.Lock()
	t.remaining[b] = t.holdTicks
	t.mu.Unlock()
	return true
}

// Shutdown makes the next Poll report that the platform is closing.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}

// Poll latches the buttons held for this tick and ages every press by one
// tick. Returns false after Shutdown.
func (t *Terminal) Poll() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}
	t.held = button.None
	for b, n := range t.remaining {
		t.held |= b
		if n <= 1 {
			delete(t.remaining, b)
		} else {
			t.remaining[b] = n - 1
		}
	}
	return true
}

// Buttons returns the buttons latched by the last Poll.
func (t *Terminal) Buttons() button.Button {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}
