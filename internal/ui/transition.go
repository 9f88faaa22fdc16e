package ui

import (
	"context"

	"stackui/internal/button"
	"stackui/internal/logging"
	"stackui/internal/trace"
	"stackui/internal/view"
)

// PushView puts v on top of the stack and gives it focus.
//
// Input is blocked until the transition finishes. When both v and the
// current top are opaque, the top is hidden and v is drawn translucent until
// the crossfade completes; with the Fade animation v only starts showing once
// the old top is fully hidden, other animations run both at once. An
// opaque-over-translucent or translucent push just shows v.
func (a *App) PushView(v *view.Node, anim view.Animation) {
	release := a.BlockInputs()
	span := trace.StartTransition(context.Background(), a.tracer, "push", v.Name, anim.String(), a.views.Len())

	last := a.views.Peek()
	fadeOut := last != nil && !last.IsTranslucent() && !v.IsTranslucent()
	wait := anim == view.Fade
	span.SetAttributes(trace.KeyFadeOut.Bool(fadeOut), trace.KeyWait.Bool(wait))

	v.RegisterAction("Exit", button.Plus, func() bool {
		a.RequestQuit()
		return true
	}, false)
	v.RegisterAction("FPS", button.Minus, func() bool {
		a.ToggleFramerate()
		return true
	}, true)

	v.SetBoundaries(a.contentRect())
	v.Invalidate()
	v.WillAppear(true)

	finish := func() {
		v.SetForceTranslucent(false)
		release()
		span.End()
	}

	v.SetAlpha(0)
	switch {
	case !fadeOut:
		a.Show(v, anim, finish)
	case wait:
		v.SetForceTranslucent(true)
		a.Hide(last, anim, func() {
			a.Show(v, anim, finish)
		})
	default:
		v.SetForceTranslucent(true)
		both := join(2, finish)
		a.Show(v, anim, both)
		a.Hide(last, anim, both)
	}

	if a.views.Len() > 0 {
		logging.Debugf("Pushing %s to the focus stack", a.focus.Current().Describe())
		a.focusStack.Push(a.focus.Current())
	}
	a.focus.Give(v)

	a.views.Push(v)
}

// PopView hides the top view, destroys it once hidden, and restores the
// focus it took over. The root view is never popped. A view already being
// popped is skipped, so overlapping pops remove successive views. onDone
// runs once the view below has been shown again.
func (a *App) PopView(anim view.Animation, onDone func()) {
	resting := a.resting()
	if len(resting) <= 1 {
		return
	}

	release := a.BlockInputs()
	last := resting[len(resting)-1]
	below := resting[len(resting)-2]
	a.popping[last.ID()] = true
	span := trace.StartTransition(context.Background(), a.tracer, "pop", last.Name, anim.String(), a.views.Len())

	wait := anim == view.Fade
	done := once(onDone)
	span.SetAttributes(trace.KeyWait.Bool(wait))

	last.WillDisappear(true)
	last.SetForceTranslucent(true)

	a.Hide(last, anim, func() {
		last.SetForceTranslucent(false)
		delete(a.popping, last.ID())
		a.views.Remove(last)
		a.destroy(last)

		if wait {
			if resting := a.resting(); len(resting) > 0 {
				top := resting[len(resting)-1]
				if top.Hidden() {
					top.WillAppear(false)
					a.Show(top, anim, done)
				} else {
					done()
				}
			}
		}

		release()
		span.End()
	})

	if !wait {
		below.WillAppear(false)
		a.Show(below, anim, done)
	}

	if id, ok := a.focusStack.Pop(); ok {
		restored := a.tree.Lookup(id)
		logging.Debugf("Giving focus to %s, and removing it from the focus stack", restored.Describe())
		a.focus.Give(restored)
	}
}

// resting returns the stacked views that are not being popped, bottom first.
func (a *App) resting() []*view.Node {
	out := make([]*view.Node, 0, a.views.Len())
	for _, v := range a.views.Stack {
		if !a.popping[v.ID()] {
			out = append(out, v)
		}
	}
	return out
}

// Resize changes the content area and lays every stacked view out again.
func (a *App) Resize(width, height int) {
	if width == a.width && height == a.height {
		return
	}
	a.width, a.height = width, height
	logging.Debugf("Window size changed to %dx%d", width, height)
	for _, v := range a.views.Stack {
		v.SetBoundaries(a.contentRect())
		v.Invalidate()
		v.WindowSizeChanged()
	}
}

// Crash pushes a view showing message whose only action quits.
func (a *App) Crash(message string) {
	logging.Errorf("Crash: %s", message)
	v := a.tree.New("Fatal error", view.WithText(message), view.Focusable())
	v.RegisterAction("OK", button.A, func() bool {
		a.RequestQuit()
		return true
	}, false)
	a.PushView(v, view.Fade)
}

func (a *App) contentRect() view.Rect {
	return view.Rect{Width: a.width, Height: a.height}
}
