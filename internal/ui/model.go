package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stackui/internal/platform"
	"stackui/internal/render"
)

// frameMsg asks the model to run one tick.
type frameMsg time.Time

// Ensure Model can be used with tea.NewProgram.
var _ tea.Model = (*Model)(nil)

// Model drives an App from a bubbletea program: key presses feed the terminal
// platform, window size changes resize the content area, and a tea.Tick
// cadence runs App.Tick. The App's own pacing should be disabled.
type Model struct {
	App      *App
	Terminal *platform.Terminal
	Screen   *render.Terminal
	Interval time.Duration
}

// NewModel returns a model ticking fps times a second.
func NewModel(app *App, term *platform.Terminal, screen *render.Terminal, fps int) *Model {
	interval := time.Second / 60
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	return &Model{App: app, Terminal: term, Screen: screen, Interval: interval}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Terminal.Press(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.App.Resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		if !m.App.Tick(context.Background()) {
			return m, tea.Quit
		}
		return m, m.nextFrame()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.App.Exited() {
		return ""
	}
	return m.Screen.Output()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
