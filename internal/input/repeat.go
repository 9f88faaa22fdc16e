package input

import "stackui/internal/button"

// Default repeat thresholds, in ticks.
const (
	DefaultRepeatDelay   = 15
	DefaultRepeatCadence = 5
)

// Repeater detects newly pressed buttons and auto-repeat of held ones.
//
// One repeat timer is shared by all buttons. It counts ticks while any button
// is held and resets to zero whenever any button changes between pressed and
// released. A held button repeats on the ticks where the timer is past Delay
// and a multiple of Cadence.
type Repeater struct {
	Delay   int
	Cadence int

	prev  button.Button
	timer int
}

// NewRepeater returns a Repeater with the given thresholds.
func NewRepeater(delay, cadence int) *Repeater {
	return &Repeater{Delay: delay, Cadence: cadence}
}

// Sample consumes one tick of held-button state and calls press for every
// activation: once on the tick a button goes down (repeating=false) and on
// every repeat tick while it stays down (repeating=true).
func (r *Repeater) Sample(held button.Button, press func(b button.Button, repeating bool)) {
	pressed := false
	for i := range button.Count {
		b := button.Button(1) << i
		down := held&b != 0
		wasDown := r.prev&b != 0
		if down {
			pressed = true
			switch {
			case !wasDown:
				press(b, false)
			case r.repeating():
				press(b, true)
			}
		}
		if down != wasDown {
			r.timer = 0
		}
	}
	r.prev = held
	if pressed {
		r.timer++
	}
}

func (r *Repeater) repeating() bool {
	return r.timer > r.Delay && r.Cadence > 0 && r.timer%r.Cadence == 0
}

// Timer returns the current repeat timer in ticks.
func (r *Repeater) Timer() int { return r.timer }

// Held returns the buttons seen held on the last sample.
func (r *Repeater) Held() button.Button { return r.prev }

// Reset forgets all button state.
func (r *Repeater) Reset() {
	r.prev = button.None
	r.timer = 0
}
