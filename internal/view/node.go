// Package view holds the retained view tree: nodes, their actions, and the
// capability interfaces the focus and transition machinery rely on.
package view

import (
	"fmt"

	"stackui/internal/button"
)

// Hooks are the lifecycle callbacks a node may implement. All are optional.
type Hooks struct {
	WillAppear        func(n *Node, resetState bool)
	WillDisappear     func(n *Node, resetState bool)
	FocusGained       func(n *Node)
	FocusLost         func(n *Node)
	ShowAnimationEnd  func(n *Node)
	WindowSizeChanged func(n *Node)
	Destroy           func(n *Node)
}

// Node is one element of the view tree.
type Node struct {
	// Name identifies the node in logs and is the label renderers display.
	Name string
	// Text is optional body content.
	Text string

	id             ID
	parent         ID
	tree           *Tree
	children       []ID
	parentUserData any
	indexed        bool

	layout    Layout
	hooks     Hooks
	actions   []Action
	focusable bool
	focused   bool

	translucent      bool
	forceTranslucent bool
	hidden           bool
	state            TransitionState

	alpha  float64
	offset float64
	shake  float64

	bounds  Rect
	invalid bool
}

// Option configures a node at creation.
type Option func(*Node)

// WithLayout sets the layout used for focus lookup among the node's children.
func WithLayout(l Layout) Option {
	return func(n *Node) { n.layout = l }
}

// WithHooks sets lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(n *Node) { n.hooks = h }
}

// WithText sets the node's body text.
func WithText(text string) Option {
	return func(n *Node) { n.Text = text }
}

// Focusable marks the node as able to hold focus itself.
func Focusable() Option {
	return func(n *Node) { n.focusable = true }
}

// Translucent marks the node as not fully occluding the views below it.
func Translucent() Option {
	return func(n *Node) { n.translucent = true }
}

// ID returns the node's handle.
func (n *Node) ID() ID { return n.id }

// Tree returns the registry owning the node.
func (n *Node) Tree() *Tree { return n.tree }

// Parent resolves the parent handle, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	if n == nil || n.tree == nil {
		return nil
	}
	return n.tree.Lookup(n.parent)
}

// HasParent reports whether the node is attached under a live parent.
func (n *Node) HasParent() bool {
	return n.Parent() != nil
}

// ParentUserData is the per-child data handed to the parent's layout.
func (n *Node) ParentUserData() any { return n.parentUserData }

// AddChild attaches child under n. The child's parent user data is its index
// among n's children and is kept current when earlier siblings are removed.
func (n *Node) AddChild(child *Node) {
	n.attach(child, nil, true)
}

// AddChildWithData attaches child under n with explicit parent user data.
func (n *Node) AddChildWithData(child *Node, userData any) {
	n.attach(child, userData, false)
}

func (n *Node) attach(child *Node, userData any, indexed bool) {
	if p := child.Parent(); p != nil {
		p.removeChild(child.id)
	}
	if indexed {
		userData = len(n.children)
	}
	child.parent = n.id
	child.parentUserData = userData
	child.indexed = indexed
	n.children = append(n.children, child.id)
}

func (n *Node) removeChild(id ID) {
	for i, c := range n.children {
		if c != id {
			continue
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		for j := i; j < len(n.children); j++ {
			if sib := n.tree.Lookup(n.children[j]); sib != nil && sib.indexed {
				sib.parentUserData = j
			}
		}
		return
	}
}

// Children returns the live children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		if c := n.tree.Lookup(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.tree.Lookup(n.children[i])
}

// Layout returns the node's layout.
func (n *Node) Layout() Layout { return n.layout }

// CanFocus reports whether the node itself accepts focus.
func (n *Node) CanFocus() bool { return n.focusable }

// SetFocusable changes whether the node accepts focus.
func (n *Node) SetFocusable(v bool) { n.focusable = v }

// IsFocused reports whether the node currently owns focus.
func (n *Node) IsFocused() bool { return n.focused }

// DefaultFocus returns the node that should receive focus when focus is given
// to n: n itself or one of its descendants, or nil.
func (n *Node) DefaultFocus() *Node {
	if n == nil {
		return nil
	}
	return n.layout.DefaultFocus(n)
}

// NextFocus asks n's layout for the next focus among its children, starting
// from the child identified by userData.
func (n *Node) NextFocus(dir Direction, userData any) *Node {
	return n.layout.NextFocus(n, dir, userData)
}

// IsTranslucent reports whether views below this one must be drawn as well.
func (n *Node) IsTranslucent() bool { return n.translucent || n.forceTranslucent }

// SetTranslucent sets the node's own translucency.
func (n *Node) SetTranslucent(v bool) { n.translucent = v }

// ForceTranslucent reports the transient transition override.
func (n *Node) ForceTranslucent() bool { return n.forceTranslucent }

// SetForceTranslucent sets the transient transition override.
func (n *Node) SetForceTranslucent(v bool) { n.forceTranslucent = v }

// Hidden reports whether the node was last hidden rather than shown.
func (n *Node) Hidden() bool { return n.hidden }

// SetHidden sets the hidden flag.
func (n *Node) SetHidden(v bool) { n.hidden = v }

// State returns the transition state tag.
func (n *Node) State() TransitionState { return n.state }

// SetState sets the transition state tag.
func (n *Node) SetState(s TransitionState) { n.state = s }

// Alpha returns the node opacity in [0, 1].
func (n *Node) Alpha() float64 { return n.alpha }

// SetAlpha sets the node opacity, clamped to [0, 1].
func (n *Node) SetAlpha(a float64) {
	n.alpha = min(max(a, 0), 1)
}

// Offset returns the horizontal slide offset in layout units.
func (n *Node) Offset() float64 { return n.offset }

// SetOffset sets the horizontal slide offset.
func (n *Node) SetOffset(v float64) { n.offset = v }

// Shake returns the rejection feedback offset.
func (n *Node) Shake() float64 { return n.shake }

// SetShake sets the rejection feedback offset.
func (n *Node) SetShake(v float64) { n.shake = v }

// Bounds returns the node's content rectangle.
func (n *Node) Bounds() Rect { return n.bounds }

// SetBoundaries sets the node's content rectangle.
func (n *Node) SetBoundaries(r Rect) { n.bounds = r }

// Invalidate marks the node and its descendants as needing layout.
func (n *Node) Invalidate() {
	n.invalid = true
	for _, c := range n.Children() {
		c.Invalidate()
	}
}

// NeedsLayout reports whether Invalidate was called since the last Layout.
func (n *Node) NeedsLayout() bool { return n.invalid }

// MarkLaidOut clears the layout-invalid flag.
func (n *Node) MarkLaidOut() { n.invalid = false }

// WillAppear runs the will-appear hook.
func (n *Node) WillAppear(resetState bool) {
	if n.hooks.WillAppear != nil {
		n.hooks.WillAppear(n, resetState)
	}
}

// WillDisappear runs the will-disappear hook.
func (n *Node) WillDisappear(resetState bool) {
	if n.hooks.WillDisappear != nil {
		n.hooks.WillDisappear(n, resetState)
	}
}

// ShowAnimationEnd runs the show-animation-end hook.
func (n *Node) ShowAnimationEnd() {
	if n.hooks.ShowAnimationEnd != nil {
		n.hooks.ShowAnimationEnd(n)
	}
}

// WindowSizeChanged runs the window-size hook.
func (n *Node) WindowSizeChanged() {
	if n.hooks.WindowSizeChanged != nil {
		n.hooks.WindowSizeChanged(n)
	}
}

// FocusGained marks n focused, runs its hook and tells every ancestor layout
// that observes child focus.
func (n *Node) FocusGained() {
	n.focused = true
	if n.hooks.FocusGained != nil {
		n.hooks.FocusGained(n)
	}
	child := n
	for p := n.Parent(); p != nil; p = p.Parent() {
		if obs, ok := p.layout.(ChildFocusObserver); ok {
			obs.ChildFocusGained(p, child)
		}
		child = p
	}
}

// FocusLost clears the focused mark and runs the hook.
func (n *Node) FocusLost() {
	n.focused = false
	if n.hooks.FocusLost != nil {
		n.hooks.FocusLost(n)
	}
}

// Describe returns a short identification for logs.
func (n *Node) Describe() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", n.Name, n.id)
}

// RegisterAction adds an action for key, replacing any existing action for
// the same key on this node.
func (n *Node) RegisterAction(hint string, key button.Button, listener func() bool, hidden bool) {
	a := Action{Key: key, Hint: hint, Listener: listener, Available: true, Hidden: hidden}
	for i := range n.actions {
		if n.actions[i].Key == key {
			n.actions[i] = a
			return
		}
	}
	n.actions = append(n.actions, a)
}

// SetActionAvailable toggles the action registered for key. Returns false if
// no such action exists.
func (n *Node) SetActionAvailable(key button.Button, available bool) bool {
	for i := range n.actions {
		if n.actions[i].Key == key {
			n.actions[i].Available = available
			return true
		}
	}
	return false
}

// Actions returns the node's actions in registration order.
func (n *Node) Actions() []Action {
	if n == nil {
		return nil
	}
	return n.actions
}

// NextHost returns the parent as an ActionHost, or nil at the root.
func (n *Node) NextHost() ActionHost {
	if p := n.Parent(); p != nil {
		return p
	}
	return nil
}
