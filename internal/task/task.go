// Package task runs application callbacks on the frame goroutine: repeating
// tasks on a period and one-shot delayed tasks.
package task

import (
	"time"

	"stackui/internal/clock"
)

// Task is a scheduled callback.
type Task struct {
	fn      func()
	period  time.Duration
	next    time.Time
	repeat  bool
	stopped bool
}

// Stop prevents any further run. Safe to call from the task itself.
func (t *Task) Stop() { t.stopped = true }

// Stopped reports whether the task will not run again.
func (t *Task) Stopped() bool { return t.stopped }

// Manager holds scheduled tasks. Frame runs the due ones.
type Manager struct {
	clock clock.Clock
	tasks []*Task
}

// NewManager returns an empty manager reading time from c.
func NewManager(c clock.Clock) *Manager {
	return &Manager{clock: c}
}

// Every schedules fn every period, first run one period from now.
func (m *Manager) Every(period time.Duration, fn func()) *Task {
	return m.add(&Task{fn: fn, period: period, repeat: true, next: m.clock.Now().Add(period)})
}

// After schedules fn once, delay from now.
func (m *Manager) After(delay time.Duration, fn func()) *Task {
	return m.add(&Task{fn: fn, next: m.clock.Now().Add(delay)})
}

func (m *Manager) add(t *Task) *Task {
	m.tasks = append(m.tasks, t)
	return t
}

// Frame runs every due task once. Tasks scheduled by a running task are
// first considered on the next Frame.
func (m *Manager) Frame() {
	now := m.clock.Now()
	for _, t := range m.tasks[:len(m.tasks):len(m.tasks)] {
		if t.stopped || now.Before(t.next) {
			continue
		}
		t.fn()
		if t.repeat {
			t.next = now.Add(t.period)
		} else {
			t.stopped = true
		}
	}

	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	clear(m.tasks[len(kept):])
	m.tasks = kept
}

// Len returns the number of live tasks.
func (m *Manager) Len() int {
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Clear stops and drops every task.
func (m *Manager) Clear() {
	for _, t := range m.tasks {
		t.stopped = true
	}
	m.tasks = nil
}
