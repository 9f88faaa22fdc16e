package ui

import (
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"

	"stackui/internal/animation"
	"stackui/internal/button"
	"stackui/internal/clock"
	"stackui/internal/event"
	"stackui/internal/focus"
	"stackui/internal/input"
	"stackui/internal/logging"
	"stackui/internal/render"
	"stackui/internal/task"
	"stackui/internal/trace"
	"stackui/internal/view"
)

// Platform is the event source polled once per tick.
type Platform interface {
	// Poll processes pending platform events. False means the platform is
	// shutting down.
	Poll() bool
	// Buttons returns the buttons held on this tick.
	Buttons() button.Button
}

// Options configures an App. Zero values select defaults.
type Options struct {
	Platform Platform
	Renderer render.Renderer
	Clock    clock.Clock
	Tracer   oteltrace.Tracer
	Theme    render.Theme

	// Width and Height are the content area size.
	Width, Height int
	// MaxFPS caps the frame rate; zero disables pacing.
	MaxFPS int

	// RepeatDelay and RepeatCadence are in ticks; zero selects the defaults.
	RepeatDelay   int
	RepeatCadence int
	// QuitButton exits the application from anywhere while held. None
	// disables the shortcut.
	QuitButton button.Button
}

// App is the application state: the view stack, the focus, the input gate
// and the engines the frame scheduler drives. Create it with New and tear it
// down with Exit. An App is driven from a single goroutine.
type App struct {
	tree       *view.Tree
	views      ViewStack
	focusStack FocusStack
	focus      *focus.Manager
	nav        focus.Navigator
	anims      *animation.Engine
	tasks      *task.Manager
	repeater   *input.Repeater

	platform Platform
	renderer render.Renderer
	clock    clock.Clock
	tracer   oteltrace.Tracer
	theme    render.Theme

	width, height int
	frameTime     time.Duration
	quitButton    button.Button

	blockTokens        int
	popping            map[view.ID]bool
	repetitionOldFocus view.ID
	quitRequested      bool
	exited             bool
	frame              uint64
	fps                framerate

	// InputBlockChanged fires with the new number of block tokens.
	InputBlockChanged event.Event[int]
	// HintsUpdated fires with the focus chain's hints after focus moves.
	HintsUpdated event.Event[[]input.Hint]
}

// New creates the application state.
func New(opts Options) *App {
	if opts.Platform == nil {
		opts.Platform = idlePlatform{}
	}
	if opts.Renderer == nil {
		opts.Renderer = &render.Recorder{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Noop().Tracer()
	}
	if opts.Theme == (render.Theme{}) {
		opts.Theme = render.ThemeFor(render.Light)
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = input.DefaultRepeatDelay
	}
	if opts.RepeatCadence <= 0 {
		opts.RepeatCadence = input.DefaultRepeatCadence
	}

	tree := view.NewTree()
	a := &App{
		tree:       tree,
		focus:      focus.NewManager(tree),
		anims:      animation.NewEngine(),
		tasks:      task.NewManager(opts.Clock),
		repeater:   input.NewRepeater(opts.RepeatDelay, opts.RepeatCadence),
		platform:   opts.Platform,
		renderer:   opts.Renderer,
		clock:      opts.Clock,
		tracer:     opts.Tracer,
		theme:      opts.Theme,
		width:      opts.Width,
		height:     opts.Height,
		quitButton: opts.QuitButton,
		popping:    make(map[view.ID]bool),
	}
	a.nav = focus.Navigator{Focus: a.focus, Reject: a.shake}
	a.focus.Changed.Subscribe(func(n *view.Node) {
		a.HintsUpdated.Fire(input.CollectHints(n))
	})
	a.SetMaximumFPS(opts.MaxFPS)
	return a
}

// Tree returns the registry views must be created in.
func (a *App) Tree() *view.Tree { return a.tree }

// Tasks returns the task manager run once per tick.
func (a *App) Tasks() *task.Manager { return a.tasks }

// Animations returns the animation engine advanced once per tick.
func (a *App) Animations() *animation.Engine { return a.anims }

// Views returns the view stack, bottom first.
func (a *App) Views() []*view.Node { return a.views.Stack }

// FocusStackLen returns the number of saved focuses.
func (a *App) FocusStackLen() int { return a.focusStack.Len() }

// Focus returns the focused node, possibly nil.
func (a *App) Focus() *view.Node { return a.focus.Current() }

// FocusChanged fires with the new focus on every focus transfer.
func (a *App) FocusChanged() *event.Event[*view.Node] { return &a.focus.Changed }

// GiveFocus moves focus to n's default focus.
func (a *App) GiveFocus(n *view.Node) { a.focus.Give(n) }

// Size returns the content area size.
func (a *App) Size() (width, height int) { return a.width, a.height }

// Exited reports whether Exit ran.
func (a *App) Exited() bool { return a.exited }

// RequestQuit makes the next tick exit the application.
func (a *App) RequestQuit() { a.quitRequested = true }

// SetMaximumFPS sets the frame rate cap; zero or less disables pacing.
func (a *App) SetMaximumFPS(fps int) {
	if fps <= 0 {
		a.frameTime = 0
	} else {
		a.frameTime = time.Second / time.Duration(fps)
	}
	logging.Infof("Maximum FPS set to %d (frame time %s)", max(fps, 0), a.frameTime)
}

// BlockInputs blocks input until the returned release function is called.
// Calls nest: input stays blocked while any release is outstanding. Release
// is idempotent.
func (a *App) BlockInputs() (release func()) {
	a.blockTokens++
	a.InputBlockChanged.Fire(a.blockTokens)
	return once(a.unblockInputs)
}

func (a *App) unblockInputs() {
	if a.blockTokens > 0 {
		a.blockTokens--
	}
	a.InputBlockChanged.Fire(a.blockTokens)
}

// InputBlocked reports whether input is currently ignored.
func (a *App) InputBlocked() bool { return a.blockTokens > 0 }

// BlockTokens returns the number of outstanding input blocks.
func (a *App) BlockTokens() int { return a.blockTokens }

// Clear destroys every view on the stack. Running transitions are settled
// first so their input blocks are released.
func (a *App) Clear() {
	snapshot := append([]*view.Node(nil), a.views.Stack...)
	for _, v := range snapshot {
		a.settle(v)
	}
	for _, v := range append([]*view.Node(nil), a.views.Stack...) {
		v.WillDisappear(true)
		a.destroy(v)
	}
	a.views.Stack = nil
	a.focusStack.Stack = nil
	clear(a.popping)
	a.focus.Reset()
}

// Exit tears the application down: every view is destroyed and every task
// and animation dropped. Later ticks return false.
func (a *App) Exit() {
	if a.exited {
		return
	}
	a.Clear()
	a.tasks.Clear()
	a.anims.Clear()
	a.fps = framerate{}
	a.exited = true
	logging.Infof("Exiting after %d frames", a.frame)
}

// destroy removes n and its descendants from the tree. Their transitions
// are settled so pending completions still run; cosmetic animations are
// dropped.
func (a *App) destroy(n *view.Node) {
	var walk func(*view.Node)
	walk = func(n *view.Node) {
		a.settle(n)
		a.anims.Kill(shakeTag(n.ID()))
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	a.tree.Destroy(n)
}

type idlePlatform struct{}

func (idlePlatform) Poll() bool             { return true }
func (idlePlatform) Buttons() button.Button { return button.None }

// once wraps fn so only the first call runs it. A nil fn yields a no-op.
func once(fn func()) func() {
	done := false
	return func() {
		if done || fn == nil {
			return
		}
		done = true
		fn()
	}
}

// join returns a function that runs fn on its n-th call.
func join(n int, fn func()) func() {
	remaining := n
	return func() {
		remaining--
		if remaining == 0 {
			fn()
		}
	}
}
