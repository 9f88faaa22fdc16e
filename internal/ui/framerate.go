package ui

import (
	"fmt"
	"time"

	"stackui/internal/logging"
	"stackui/internal/task"
)

// framerate counts rendered frames and refreshes its text once a second.
type framerate struct {
	enabled bool
	frames  int
	text    string
	task    *task.Task
}

// ToggleFramerate shows or hides the framerate counter.
func (a *App) ToggleFramerate() {
	if a.fps.enabled {
		a.fps.task.Stop()
		a.fps = framerate{}
		logging.Infof("Framerate counter hidden")
		return
	}
	a.fps = framerate{enabled: true, text: "FPS: ---"}
	a.fps.task = a.tasks.Every(time.Second, func() {
		a.fps.text = fmt.Sprintf("FPS: %03d", a.fps.frames)
		a.fps.frames = 0
	})
	logging.Infof("Framerate counter shown")
}

// FramerateText returns the counter text, empty when hidden.
func (a *App) FramerateText() string { return a.fps.text }
