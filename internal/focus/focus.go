// Package focus owns the single focused node and directional navigation
// through the view tree.
package focus

import (
	"stackui/internal/event"
	"stackui/internal/logging"
	"stackui/internal/view"
)

// Manager tracks the focused node. At most one node holds focus; the focus
// may be nil transiently (for instance while a view without focusable nodes
// is on top).
type Manager struct {
	tree    *view.Tree
	current view.ID

	// Changed fires with the new focus (possibly nil) on every transfer.
	Changed event.Event[*view.Node]
}

// NewManager creates a manager resolving handles through tree.
func NewManager(tree *view.Tree) *Manager {
	return &Manager{tree: tree}
}

// Current returns the focused node, or nil if none or if it was destroyed.
func (m *Manager) Current() *view.Node {
	return m.tree.Lookup(m.current)
}

// Give transfers focus to n's default focus (n itself or a descendant).
// Nothing happens if that is already the focused node.
func (m *Manager) Give(n *view.Node) {
	old := m.Current()
	var next *view.Node
	if n != nil {
		next = n.DefaultFocus()
	}
	if old == next {
		return
	}

	if old != nil {
		old.FocusLost()
	}
	m.current = 0
	if next != nil {
		m.current = next.ID()
	}
	m.Changed.Fire(next)

	if next != nil {
		next.FocusGained()
		logging.Debugf("Giving focus to %s", next.Describe())
	}
}

// Reset drops focus without running hooks, for teardown.
func (m *Manager) Reset() {
	m.current = 0
}
