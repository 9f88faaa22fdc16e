// Package ui is the application runtime: the view stack, view transitions and
// the frame scheduler.
//
// Core abstractions:
//   - App: the single application state (stack, focus, input gate, engines)
//   - ViewStack: the on-screen views, topmost last
//   - FocusStack: the focus to restore when each pushed view is popped
//   - Tick: one frame of input, animation, tasks and rendering
//   - Model: a bubbletea adapter that drives Tick from terminal events
package ui
