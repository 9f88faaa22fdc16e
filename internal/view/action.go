package view

import "stackui/internal/button"

// Action binds a key to a listener on a node.
type Action struct {
	Key  button.Button
	Hint string
	// Available actions are dispatched; unavailable ones are skipped.
	Available bool
	// Hidden actions are dispatched but never shown as hints.
	Hidden bool
	// Listener returns true when it consumed the key.
	Listener func() bool
}

// ActionHost is a link of the focus chain the dispatcher walks: its own
// actions and the next host toward the root, nil at the top.
type ActionHost interface {
	Actions() []Action
	NextHost() ActionHost
}

// Animatable is what the transition controller drives: opacity, slide offset
// and the transition state.
type Animatable interface {
	ID() ID
	Describe() string
	State() TransitionState
	SetState(TransitionState)
	Hidden() bool
	SetHidden(bool)
	Alpha() float64
	SetAlpha(float64)
	SetOffset(float64)
	ShowAnimationEnd()
}

var (
	_ ActionHost = (*Node)(nil)
	_ Animatable = (*Node)(nil)
)
