package ui

import "stackui/internal/view"

// ViewStack holds the views on screen, topmost last.
type ViewStack struct {
	Stack []*view.Node
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(v *view.Node) {
	s.Stack = append(s.Stack, v)
}

// Remove takes v out of the stack wherever it is.
// Returns false if v is not on the stack.
func (s *ViewStack) Remove(v *view.Node) bool {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if s.Stack[i] == v {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Peek returns the top view without removing it.
// Returns nil if the stack is empty.
func (s *ViewStack) Peek() *view.Node {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// At returns the i-th view from the bottom, or nil when out of range.
func (s *ViewStack) At(i int) *view.Node {
	if i < 0 || i >= len(s.Stack) {
		return nil
	}
	return s.Stack[i]
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}

// Visible returns the views that must be drawn, bottom to top: walking down
// from the top, every view up to and including the first one that is not
// translucent. Views below it are fully covered.
func (s *ViewStack) Visible() []*view.Node {
	start := 0
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if !s.Stack[i].IsTranslucent() {
			start = i
			break
		}
	}
	return s.Stack[start:]
}

// FocusStack remembers, for each pushed view but the first, the focus the
// view took over from.
type FocusStack struct {
	Stack []view.ID
}

// Push saves focus. A nil focus is saved as the zero handle.
func (s *FocusStack) Push(focus *view.Node) {
	var id view.ID
	if focus != nil {
		id = focus.ID()
	}
	s.Stack = append(s.Stack, id)
}

// Pop removes and returns the most recently saved focus.
func (s *FocusStack) Pop() (view.ID, bool) {
	if len(s.Stack) == 0 {
		return 0, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Len returns the number of saved focuses.
func (s *FocusStack) Len() int {
	return len(s.Stack)
}
