package focus

import "stackui/internal/view"

// Navigator moves focus between nodes in a direction.
type Navigator struct {
	Focus *Manager
	// Reject plays the feedback cue on the focused node when no candidate
	// exists in the requested direction.
	Reject func(n *view.Node, dir view.Direction)
}

// Navigate moves focus in dir. The parent of the focused node is asked for the
// next focus; with no candidate the search climbs one level at a time, up to
// (but not including) the root. Returns true if focus moved.
func (nv *Navigator) Navigate(dir view.Direction) bool {
	focused := nv.Focus.Current()
	if focused == nil || !focused.HasParent() {
		return false
	}

	current := focused
	next := current.Parent().NextFocus(dir, current.ParentUserData())
	for next == nil {
		parent := current.Parent()
		if parent == nil || !parent.HasParent() {
			break
		}
		current = parent
		next = current.Parent().NextFocus(dir, current.ParentUserData())
	}

	if next == nil {
		if nv.Reject != nil {
			nv.Reject(focused, dir)
		}
		return false
	}

	nv.Focus.Give(next)
	return true
}
