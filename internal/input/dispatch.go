// Package input turns button state into action invocations: the action
// dispatcher, the press/repeat detector, hints and the terminal key map.
package input

import (
	"stackui/internal/button"
	"stackui/internal/view"
)

// HandleAction dispatches key along the focus chain, from focus up to the
// root. At every node, each available action registered for key is invoked
// unless key was already consumed during this call; a listener returning true
// consumes it. Returns true iff key was consumed.
func HandleAction(focus view.ActionHost, key button.Button) bool {
	consumed := make(map[button.Button]struct{})
	for n := focus; n != nil; n = n.NextHost() {
		for _, action := range n.Actions() {
			if action.Key != key {
				continue
			}
			if _, done := consumed[action.Key]; done {
				continue
			}
			if action.Available && action.Listener != nil && action.Listener() {
				consumed[action.Key] = struct{}{}
			}
		}
	}
	return len(consumed) > 0
}
