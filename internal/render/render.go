// Package render defines the renderer contract the frame scheduler draws
// through, plus a terminal compositor and a recording renderer.
package render

import (
	"stackui/internal/input"
	"stackui/internal/view"
)

// FrameContext carries per-frame state to the renderer.
type FrameContext struct {
	Frame  uint64
	Width  int
	Height int
	Theme  Theme
	// Focus is the focused node, possibly nil.
	Focus *view.Node
	// Hints are the actions available along the focus chain.
	Hints []input.Hint
	// FPS is the framerate counter text, empty when the counter is off.
	FPS string
}

// Renderer draws one frame. RenderView is called for each visible view from
// the bottom of the visible range to the top, so later calls draw over
// earlier ones.
type Renderer interface {
	BeginFrame(fc *FrameContext)
	RenderView(v *view.Node, fc *FrameContext)
	EndFrame(fc *FrameContext)
}

// Recorder is a Renderer that records which views each frame drew.
type Recorder struct {
	Frames [][]string
	Last   *FrameContext
	open   bool
}

// BeginFrame starts a new recorded frame.
func (r *Recorder) BeginFrame(fc *FrameContext) {
	r.Frames = append(r.Frames, []string{})
	r.open = true
}

// RenderView records v's name in the current frame.
func (r *Recorder) RenderView(v *view.Node, fc *FrameContext) {
	if !r.open {
		return
	}
	i := len(r.Frames) - 1
	r.Frames[i] = append(r.Frames[i], v.Name)
}

// EndFrame closes the frame.
func (r *Recorder) EndFrame(fc *FrameContext) {
	r.open = false
	r.Last = fc
}

// LastFrame returns the views drawn in the most recent frame.
func (r *Recorder) LastFrame() []string {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}
