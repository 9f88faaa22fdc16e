package platform

import (
	"fmt"
	"strconv"
	"strings"

	"stackui/internal/button"
)

// Step holds Buttons for Ticks consecutive ticks.
type Step struct {
	Buttons button.Button
	Ticks   int
}

// Script replays a fixed input sequence, then reports shutdown.
type Script struct {
	steps []Step
	step  int
	used  int
	held  button.Button
}

// NewScript returns a source replaying steps in order.
func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

// ParseScript parses a comma-separated script. Each entry is a button set
// ("a", "down", "l+r", or "none" for a pause) with an optional "*N" tick
// count, e.g. "down*20,none*5,a,none*30".
func ParseScript(s string) (*Script, error) {
	var steps []Step
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, count, hasCount := strings.Cut(entry, "*")
		ticks := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script entry %q: bad tick count", entry)
			}
			ticks = n
		}
		var held button.Button
		if !strings.EqualFold(strings.TrimSpace(name), "none") {
			for _, part := range strings.Split(name, "+") {
				b, ok := button.Parse(part)
				if !ok {
					return nil, fmt.Errorf("script entry %q: unknown button %q", entry, part)
				}
				held |= b
			}
		}
		steps = append(steps, Step{Buttons: held, Ticks: ticks})
	}
	return NewScript(steps...), nil
}

// Poll advances the script by one tick. Returns false once every step has
// been replayed.
func (s *Script) Poll() bool {
	for s.step < len(s.steps) && s.used >= s.steps[s.step].Ticks {
		s.step++
		s.used = 0
	}
	if s.step >= len(s.steps) {
		s.held = button.None
		return false
	}
	s.held = s.steps[s.step].Buttons
	s.used++
	return true
}

// Buttons returns the buttons held on the current tick.
func (s *Script) Buttons() button.Button { return s.held }

// Len returns the total number of ticks the script lasts.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.steps {
		n += st.Ticks
	}
	return n
}
