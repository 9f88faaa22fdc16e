package ui

import (
	"context"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"

	"stackui/internal/button"
	"stackui/internal/input"
	"stackui/internal/logging"
	"stackui/internal/render"
	"stackui/internal/trace"
)

// Tick runs one frame: poll the platform, dispatch input, check for quit,
// advance animations, run due tasks, render, then sleep out the rest of the
// frame budget. Returns false once the application has exited.
func (a *App) Tick(ctx context.Context) bool {
	if a.exited {
		return false
	}

	var start time.Time
	if a.frameTime > 0 {
		start = a.clock.Now()
	}

	if !a.platform.Poll() {
		logging.Infof("Platform is shutting down")
		a.Exit()
		return false
	}

	held := a.platform.Buttons()
	a.repeater.Sample(held, a.onButtonPressed)

	if a.exited {
		return false
	}
	if a.quitRequested || (a.quitButton != button.None && held.Has(a.quitButton)) {
		a.Exit()
		return false
	}

	a.anims.Advance(1)
	a.tasks.Frame()
	a.render()
	a.frame++

	if a.frameTime > 0 {
		a.pace(ctx, start)
	}
	return true
}

// Run ticks until the application exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()

	for a.Tick(ctx) {
		if err := ctx.Err(); err != nil {
			a.Exit()
			return err
		}
	}
	return nil
}

// Frame returns the number of frames rendered so far.
func (a *App) Frame() uint64 { return a.frame }

func (a *App) render() {
	current := a.focus.Current()
	fc := &render.FrameContext{
		Frame:  a.frame,
		Width:  a.width,
		Height: a.height,
		Theme:  a.theme,
		Focus:  current,
		Hints:  input.CollectHints(current),
		FPS:    a.fps.text,
	}

	a.renderer.BeginFrame(fc)
	for _, v := range a.views.Visible() {
		if v.NeedsLayout() {
			v.MarkLaidOut()
		}
		a.renderer.RenderView(v, fc)
	}
	a.renderer.EndFrame(fc)

	if a.fps.enabled {
		a.fps.frames++
	}
}

func (a *App) pace(ctx context.Context, start time.Time) {
	elapsed := a.clock.Now().Sub(start)
	if elapsed < a.frameTime {
		a.clock.Sleep(ctx, a.frameTime-elapsed)
		return
	}
	if overrun := elapsed - a.frameTime; overrun > 0 {
		logging.Debugf("Frame %d took %s, %s over budget", a.frame, elapsed, overrun)
		trace.FrameOverrun(oteltrace.SpanFromContext(ctx), a.frame, overrun)
	}
}
