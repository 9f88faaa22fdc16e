package input

import (
	"stackui/internal/button"
	"stackui/internal/view"
)

// Hint is an action shown to the user as "key: label".
type Hint struct {
	Key   button.Button
	Label string
}

// CollectHints walks the focus chain from focus to the root and returns the
// first available, visible action for each key, nearest node first. It
// mirrors which listener HandleAction tries first for each key.
func CollectHints(focus view.ActionHost) []Hint {
	var hints []Hint
	seen := make(map[button.Button]bool)
	for n := focus; n != nil; n = n.NextHost() {
		for _, action := range n.Actions() {
			if seen[action.Key] || !action.Available || action.Hidden || action.Hint == "" {
				continue
			}
			seen[action.Key] = true
			hints = append(hints, Hint{Key: action.Key, Label: action.Hint})
		}
	}
	return hints
}
