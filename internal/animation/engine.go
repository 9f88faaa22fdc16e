// Package animation is the tick-driven animation engine.
//
// Animations advance only when the frame scheduler calls [Engine.Advance],
// once per tick. Completion callbacks run synchronously inside Advance (or
// inside Finish) and fire exactly once per animation: an animation is either
// completed, finished early, or killed, and only the first two run Done.
package animation

import "github.com/charmbracelet/harmonica"

// Tween interpolates a value from From to To over Ticks animation steps.
type Tween struct {
	// Tag identifies the animated property. Starting a tween with the tag of
	// a running one finishes the running one first.
	Tag      any
	From, To float64
	// Ticks is the duration in animation steps. Zero or less completes on
	// the next Advance.
	Ticks int
	Curve Curve
	// Update receives every new value.
	Update func(v float64)
	// Done runs once when the tween completes or is finished early.
	Done func()
}

type running struct {
	tag     any
	elapsed int
	step    func(elapsed int) (v float64, done bool)
	final   float64
	update  func(float64)
	done    func()
	settled bool
}

// settle runs the final update and Done at most once.
func (r *running) settle() {
	if r.settled {
		return
	}
	r.settled = true
	if r.update != nil {
		r.update(r.final)
	}
	if r.done != nil {
		r.done()
	}
}

// Engine holds the running animations.
type Engine struct {
	active []*running
	// pending holds animations that completed during the current Advance and
	// whose Done has not run yet.
	pending []*running
}

// NewEngine returns an idle engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Animate starts t. The start value is applied immediately.
func (e *Engine) Animate(t Tween) {
	if t.Tag != nil {
		e.Finish(t.Tag)
	}
	curve := t.Curve
	if curve == nil {
		curve = Linear
	}
	from, to, ticks := t.From, t.To, t.Ticks
	r := &running{
		tag:    t.Tag,
		final:  to,
		update: t.Update,
		done:   t.Done,
		step: func(elapsed int) (float64, bool) {
			if ticks <= 0 {
				return to, true
			}
			p := min(float64(elapsed)/float64(ticks), 1)
			return from + (to-from)*curve(p), p >= 1
		},
	}
	if r.update != nil {
		r.update(from)
	}
	e.active = append(e.active, r)
}

// Spring starts a damped oscillation from `from` back to zero lasting ticks
// steps. It has no completion callback; use it for cosmetic feedback.
func (e *Engine) Spring(tag any, from float64, ticks int, update func(v float64)) {
	if tag != nil {
		e.Kill(tag)
	}
	spring := harmonica.NewSpring(harmonica.FPS(60), 18.0, 0.15)
	pos, vel := from, 0.0
	r := &running{
		tag:    tag,
		final:  0,
		update: update,
		step: func(elapsed int) (float64, bool) {
			if elapsed >= ticks {
				return 0, true
			}
			pos, vel = spring.Update(pos, vel, 0)
			return pos, false
		},
	}
	if update != nil {
		update(from)
	}
	e.active = append(e.active, r)
}

// Advance moves every running animation forward by delta steps and runs the
// completion callbacks of those that reached their end. Animations started
// by those callbacks begin advancing on the next call.
func (e *Engine) Advance(delta int) {
	snapshot := e.active
	for _, r := range snapshot {
		if r.settled {
			continue
		}
		r.elapsed += delta
		v, done := r.step(r.elapsed)
		if done {
			r.final = v
			e.pending = append(e.pending, r)
			continue
		}
		if r.update != nil {
			r.update(v)
		}
	}
	e.compact()

	for len(e.pending) > 0 {
		r := e.pending[0]
		e.pending = e.pending[1:]
		r.settle()
	}
}

// Finish completes the animation with tag immediately: its final value is
// applied and Done runs. Returns false if nothing with that tag is running.
func (e *Engine) Finish(tag any) bool {
	for _, list := range [][]*running{e.active, e.pending} {
		for _, r := range list {
			if r.tag == tag && !r.settled {
				r.settle()
				e.compact()
				return true
			}
		}
	}
	return false
}

// Kill drops the animation with tag without applying its final value or
// running Done.
func (e *Engine) Kill(tag any) bool {
	for _, r := range e.active {
		if r.tag == tag && !r.settled {
			r.settled = true
			e.compact()
			return true
		}
	}
	return false
}

// Running reports whether an animation with tag is in flight.
func (e *Engine) Running(tag any) bool {
	for _, r := range e.active {
		if r.tag == tag && !r.settled {
			return true
		}
	}
	return false
}

// Len returns the number of animations in flight.
func (e *Engine) Len() int {
	n := 0
	for _, r := range e.active {
		if !r.settled {
			n++
		}
	}
	return n
}

// Clear drops every animation without running callbacks.
func (e *Engine) Clear() {
	e.active = nil
	e.pending = nil
}

func (e *Engine) compact() {
	kept := e.active[:0:0]
	for _, r := range e.active {
		if !r.settled && !e.isPending(r) {
			kept = append(kept, r)
		}
	}
	e.active = kept
}

func (e *Engine) isPending(r *running) bool {
	for _, p := range e.pending {
		if p == r {
			return true
		}
	}
	return false
}
