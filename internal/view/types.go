package view

import (
	"fmt"

	"stackui/internal/button"
)

// Direction is a focus navigation direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionOf maps a D-pad button to its navigation direction.
func DirectionOf(b button.Button) (Direction, bool) {
	switch b {
	case button.DUp:
		return Up, true
	case button.DDown:
		return Down, true
	case button.DLeft:
		return Left, true
	case button.DRight:
		return Right, true
	}
	return 0, false
}

// Animation selects how a view enters or leaves the screen.
type Animation int

const (
	// Fade cross-fades; the incoming view waits for the outgoing one.
	Fade Animation = iota
	// SlideLeft fades while sliding towards the left.
	SlideLeft
	// SlideRight fades while sliding towards the right.
	SlideRight
	// NoAnimation completes on the next animation step.
	NoAnimation
)

func (a Animation) String() string {
	switch a {
	case Fade:
		return "fade"
	case SlideLeft:
		return "slide-left"
	case SlideRight:
		return "slide-right"
	case NoAnimation:
		return "none"
	default:
		return fmt.Sprintf("Animation(%d)", int(a))
	}
}

// TransitionState tags where a view is in its show/hide lifecycle.
//
//	         Show()              done
//	Idle ─────────────► Showing ──────► Idle
//	  │      Hide()              done
//	  └───────────────► Hiding  ──────► Idle
type TransitionState int

const (
	Idle TransitionState = iota
	Showing
	Hiding
)

func (s TransitionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Showing:
		return "showing"
	case Hiding:
		return "hiding"
	default:
		return fmt.Sprintf("TransitionState(%d)", int(s))
	}
}

// Rect is a content-area rectangle in layout units.
type Rect struct {
	X, Y, Width, Height int
}
