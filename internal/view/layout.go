package view

// Layout is the per-node focus lookup collaborator. Geometry is not its
// concern here: only which child receives focus.
type Layout interface {
	// NextFocus returns the next focus among n's children when moving in dir
	// from the child identified by userData, or nil if there is none.
	NextFocus(n *Node, dir Direction, userData any) *Node
	// DefaultFocus returns the node to focus when n is given focus.
	DefaultFocus(n *Node) *Node
}

// ChildFocusObserver is implemented by layouts that want to know when one of
// their descendants gains focus. child is the direct child on the path.
type ChildFocusObserver interface {
	ChildFocusGained(n *Node, child *Node)
}

// leafLayout focuses the node itself if it can, and never navigates.
type leafLayout struct{}

func (leafLayout) NextFocus(*Node, Direction, any) *Node { return nil }

func (leafLayout) DefaultFocus(n *Node) *Node {
	if n.focusable {
		return n
	}
	for _, c := range n.Children() {
		if f := c.DefaultFocus(); f != nil {
			return f
		}
	}
	return nil
}

// Axis is the orientation of a Box.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Box lays children out along one axis and moves focus between them with the
// two directions of that axis.
type Box struct {
	Axis Axis
	// DefaultIndex is the child tried first when the box gains focus.
	DefaultIndex int
	// RememberFocus makes DefaultFocus return the last focused child.
	RememberFocus bool

	last ID
}

// NewBox returns a Box along axis that remembers its last focused child.
func NewBox(axis Axis) *Box {
	return &Box{Axis: axis, RememberFocus: true}
}

func (b *Box) step(dir Direction) int {
	switch {
	case b.Axis == Vertical && dir == Up, b.Axis == Horizontal && dir == Left:
		return -1
	case b.Axis == Vertical && dir == Down, b.Axis == Horizontal && dir == Right:
		return 1
	}
	return 0
}

// NextFocus walks from the current child in the direction of travel and
// returns the first child with something to focus.
func (b *Box) NextFocus(n *Node, dir Direction, userData any) *Node {
	delta := b.step(dir)
	idx, ok := userData.(int)
	if delta == 0 || !ok {
		return nil
	}
	for i := idx + delta; i >= 0 && i < len(n.children); i += delta {
		if f := n.Child(i).DefaultFocus(); f != nil {
			return f
		}
	}
	return nil
}

// DefaultFocus returns the remembered child focus, or the first focusable
// child at or after DefaultIndex.
func (b *Box) DefaultFocus(n *Node) *Node {
	if n.focusable {
		return n
	}
	if b.RememberFocus {
		if c := n.tree.Lookup(b.last); c != nil && c.parent == n.id {
			if f := c.DefaultFocus(); f != nil {
				return f
			}
		}
	}
	for i := max(b.DefaultIndex, 0); i < len(n.children); i++ {
		if f := n.Child(i).DefaultFocus(); f != nil {
			return f
		}
	}
	return nil
}

// ChildFocusGained records the child for RememberFocus.
func (b *Box) ChildFocusGained(_ *Node, child *Node) {
	b.last = child.id
}
