package ui

import (
	"stackui/internal/button"
	"stackui/internal/input"
	"stackui/internal/view"
)

// HandleAction dispatches key along the focus chain. Returns true if a
// listener consumed it.
func (a *App) HandleAction(key button.Button) bool {
	return input.HandleAction(a.focus.Current(), key)
}

// Navigate moves focus in dir, playing the rejection cue on the focused node
// when there is nowhere to go. Returns true if focus moved.
func (a *App) Navigate(dir view.Direction) bool {
	return a.nav.Navigate(dir)
}

// onButtonPressed handles one activation from the repeat detector.
func (a *App) onButtonPressed(b button.Button, repeating bool) {
	if a.InputBlocked() {
		return
	}

	current := a.focus.Current()
	var currentID view.ID
	if current != nil {
		currentID = current.ID()
	}

	// A repeat that moved nothing last time will not move anything now.
	if repeating && a.repetitionOldFocus == currentID {
		return
	}
	a.repetitionOldFocus = currentID

	if a.HandleAction(b) {
		return
	}
	if dir, ok := view.DirectionOf(b); ok && current != nil {
		a.Navigate(dir)
	}
}
