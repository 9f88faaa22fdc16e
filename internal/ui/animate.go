package ui

import (
	"stackui/internal/animation"
	"stackui/internal/logging"
	"stackui/internal/view"
)

// Transition timings, in ticks, and slide distance, in content units.
const (
	FadeTicks     = 15
	SlideTicks    = 21
	SlideDistance = 8.0

	shakeTicks     = 30
	shakeAmplitude = 2.0
)

type (
	alphaTag  view.ID
	offsetTag view.ID
	shakeTag  view.ID
)

func ticksFor(anim view.Animation) int {
	switch anim {
	case view.NoAnimation:
		return 0
	case view.SlideLeft, view.SlideRight:
		return SlideTicks
	default:
		return FadeTicks
	}
}

// Show fades n in from its current opacity, sliding it into place for slide
// animations. done runs exactly once, after the ShowAnimationEnd hook.
func (a *App) Show(n view.Animatable, anim view.Animation, done func()) {
	a.settle(n)
	logging.Debugf("Showing %s with animation %s", n.Describe(), anim)

	n.SetHidden(false)
	n.SetState(view.Showing)
	ticks := ticksFor(anim)

	switch anim {
	case view.SlideLeft:
		a.slide(n, SlideDistance, 0, ticks)
	case view.SlideRight:
		a.slide(n, -SlideDistance, 0, ticks)
	}

	a.anims.Animate(animation.Tween{
		Tag:    alphaTag(n.ID()),
		From:   n.Alpha(),
		To:     1,
		Ticks:  ticks,
		Curve:  animation.EaseOut,
		Update: n.SetAlpha,
		Done: func() {
			n.SetState(view.Idle)
			n.ShowAnimationEnd()
			if done != nil {
				done()
			}
		},
	})
}

// Hide fades n out, sliding it away for slide animations. Hiding a node that
// is already hidden completes immediately. done runs exactly once.
func (a *App) Hide(n view.Animatable, anim view.Animation, done func()) {
	a.settle(n)
	if n.Hidden() {
		if done != nil {
			done()
		}
		return
	}
	logging.Debugf("Hiding %s with animation %s", n.Describe(), anim)

	n.SetHidden(true)
	n.SetState(view.Hiding)
	ticks := ticksFor(anim)

	switch anim {
	case view.SlideLeft:
		a.slide(n, 0, -SlideDistance, ticks)
	case view.SlideRight:
		a.slide(n, 0, SlideDistance, ticks)
	}

	a.anims.Animate(animation.Tween{
		Tag:    alphaTag(n.ID()),
		From:   n.Alpha(),
		To:     0,
		Ticks:  ticks,
		Curve:  animation.EaseIn,
		Update: n.SetAlpha,
		Done: func() {
			n.SetState(view.Idle)
			n.SetOffset(0)
			if done != nil {
				done()
			}
		},
	})
}

func (a *App) slide(n view.Animatable, from, to float64, ticks int) {
	a.anims.Animate(animation.Tween{
		Tag:    offsetTag(n.ID()),
		From:   from,
		To:     to,
		Ticks:  ticks,
		Curve:  animation.EaseInOut,
		Update: n.SetOffset,
	})
}

// settle completes any transition n is in, running its completion now.
func (a *App) settle(n view.Animatable) {
	a.anims.Finish(offsetTag(n.ID()))
	a.anims.Finish(alphaTag(n.ID()))
}

// shake plays the rejection cue on n after a failed navigation.
func (a *App) shake(n *view.Node, dir view.Direction) {
	amplitude := shakeAmplitude
	if dir == view.Left || dir == view.Up {
		amplitude = -amplitude
	}
	a.anims.Spring(shakeTag(n.ID()), amplitude, shakeTicks, n.SetShake)
}
