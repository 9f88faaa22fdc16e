package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"stackui/internal/button"
	"stackui/internal/view"
)

// chain builds root > middle > leaf and returns them leaf first.
func chain() (leaf, middle, root *view.Node) {
	tree := view.NewTree()
	root = tree.New("root")
	middle = tree.New("middle")
	leaf = tree.New("leaf", view.Focusable())
	root.AddChild(middle)
	middle.AddChild(leaf)
	return leaf, middle, root
}

func TestHandleAction_NearestConsumerWins(t *testing.T) {
	leaf, middle, root := chain()
	var calls []string
	middle.RegisterAction("Open", button.A, func() bool { calls = append(calls, "middle"); return true }, false)
	root.RegisterAction("Open", button.A, func() bool { calls = append(calls, "root"); return true }, false)

	if !HandleAction(leaf, button.A) {
		t.Fatal("expected A to be consumed")
	}
	if len(calls) != 1 || calls[0] != "middle" {
		t.Errorf("calls = %v, want [middle]", calls)
	}
}

func TestHandleAction_UnconsumedFallsThrough(t *testing.T) {
	leaf, middle, root := chain()
	var calls []string
	leaf.RegisterAction("Peek", button.A, func() bool { calls = append(calls, "leaf"); return false }, false)
	middle.RegisterAction("Off", button.A, func() bool { calls = append(calls, "middle"); return true }, false)
	middle.SetActionAvailable(button.A, false)
	root.RegisterAction("Open", button.A, func() bool { calls = append(calls, "root"); return true }, false)

	if !HandleAction(leaf, button.A) {
		t.Fatal("expected A to be consumed by root")
	}
	want := []string{"leaf", "root"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestHandleAction_OtherKeysIgnored(t *testing.T) {
	leaf, _, root := chain()
	called := false
	root.RegisterAction("Back", button.B, func() bool { called = true; return true }, false)

	if HandleAction(leaf, button.A) {
		t.Error("A has no listener and must not be consumed")
	}
	if called {
		t.Error("B listener must not run for A")
	}
	if HandleAction(nil, button.A) {
		t.Error("no focus means nothing to dispatch")
	}
}

// overlay is an action host that is not part of a view tree, chained in
// front of a node.
type overlay struct {
	actions []view.Action
	next    view.ActionHost
}

func (o *overlay) Actions() []view.Action    { return o.actions }
func (o *overlay) NextHost() view.ActionHost { return o.next }

func TestHandleAction_AnyActionHost(t *testing.T) {
	leaf, _, root := chain()
	var calls []string
	root.RegisterAction("Back", button.B, func() bool { calls = append(calls, "root"); return true }, false)
	host := &overlay{
		actions: []view.Action{{Key: button.A, Hint: "Close", Available: true, Listener: func() bool {
			calls = append(calls, "overlay")
			return true
		}}},
		next: leaf,
	}

	if !HandleAction(host, button.A) || !HandleAction(host, button.B) {
		t.Fatal("expected both keys to be consumed")
	}
	if len(calls) != 2 || calls[0] != "overlay" || calls[1] != "root" {
		t.Errorf("calls = %v, want [overlay root]", calls)
	}
	if hints := CollectHints(host); len(hints) != 2 || hints[0].Label != "Close" {
		t.Errorf("hints = %v, want Close first", hints)
	}
}

func TestHandleAction_NilNodeFocus(t *testing.T) {
	var focus *view.Node
	if HandleAction(focus, button.A) {
		t.Error("a nil node has no actions")
	}
	if hints := CollectHints(focus); len(hints) != 0 {
		t.Errorf("hints = %v, want none", hints)
	}
}

func TestRepeater_EdgeAndRepeat(t *testing.T) {
	r := NewRepeater(DefaultRepeatDelay, DefaultRepeatCadence)
	var presses []int
	var repeats []int
	for tick := 1; tick <= 30; tick++ {
		r.Sample(button.DDown, func(b button.Button, repeating bool) {
			if repeating {
				repeats = append(repeats, tick)
			} else {
				presses = append(presses, tick)
			}
		})
	}

	if len(presses) != 1 || presses[0] != 1 {
		t.Errorf("presses = %v, want [1]", presses)
	}
	want := []int{21, 26}
	if len(repeats) != len(want) || repeats[0] != want[0] || repeats[1] != want[1] {
		t.Errorf("repeats = %v, want %v", repeats, want)
	}
}

func TestRepeater_ReleaseResets(t *testing.T) {
	r := NewRepeater(DefaultRepeatDelay, DefaultRepeatCadence)
	noop := func(button.Button, bool) {}
	for range 18 {
		r.Sample(button.A, noop)
	}
	if r.Timer() != 18 {
		t.Fatalf("timer = %d, want 18", r.Timer())
	}

	r.Sample(button.None, noop)
	if r.Timer() != 0 {
		t.Errorf("timer after release = %d, want 0", r.Timer())
	}

	edges := 0
	r.Sample(button.A, func(_ button.Button, repeating bool) {
		if !repeating {
			edges++
		}
	})
	if edges != 1 {
		t.Errorf("re-press should be a fresh edge, got %d", edges)
	}
	if r.Timer() != 1 {
		t.Errorf("timer after re-press = %d, want 1", r.Timer())
	}
}

func TestRepeater_SecondButtonResetsSharedTimer(t *testing.T) {
	r := NewRepeater(2, 1)
	noop := func(button.Button, bool) {}
	for range 5 {
		r.Sample(button.DUp, noop)
	}
	r.Sample(button.DUp|button.A, noop)
	if r.Timer() != 1 {
		t.Errorf("timer = %d, want 1 after a new button went down", r.Timer())
	}
}

func TestCollectHints(t *testing.T) {
	leaf, middle, root := chain()
	leaf.RegisterAction("Select", button.A, func() bool { return true }, false)
	middle.RegisterAction("Open", button.A, func() bool { return true }, false)
	middle.RegisterAction("Back", button.B, func() bool { return true }, false)
	root.RegisterAction("FPS", button.Minus, func() bool { return true }, true)
	root.RegisterAction("Exit", button.Plus, func() bool { return true }, false)

	hints := CollectHints(leaf)

	want := []Hint{{button.A, "Select"}, {button.B, "Back"}, {button.Plus, "Exit"}}
	if len(hints) != len(want) {
		t.Fatalf("hints = %v, want %v", hints, want)
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Errorf("hints[%d] = %v, want %v", i, hints[i], want[i])
		}
	}
}

func TestKeyMap_Lookup(t *testing.T) {
	m := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want button.Button
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, button.DUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, button.DDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, button.A},
		{tea.KeyMsg{Type: tea.KeyEsc}, button.B},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, button.Plus},
	}
	for _, tt := range tests {
		got, ok := m.Lookup(tt.msg)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v", tt.msg.String(), got, ok, tt.want)
		}
	}
	if _, ok := m.Lookup(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}); ok {
		t.Error("z should be unbound")
	}
}

func TestHelpKeyMap_ShortHelp(t *testing.T) {
	km := HelpKeyMap{Keys: DefaultKeyMap(), Hints: []Hint{{button.A, "Open"}, {button.B, "Back"}}}
	bindings := km.ShortHelp()
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if h := bindings[0].Help(); h.Key != "enter" || h.Desc != "Open" {
		t.Errorf("first binding help = %+v", h)
	}
	if len(km.FullHelp()) != 1 {
		t.Error("expected a single FullHelp column")
	}
}
