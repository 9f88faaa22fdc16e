package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"stackui/internal/input"
	"stackui/internal/view"
)

const maxLabelWidth = 32

// Terminal composites views into a string for a terminal of fc.Width by
// fc.Height cells. The last row is reserved for action hints.
type Terminal struct {
	Keys *input.KeyMap

	help   help.Model
	width  int
	height int
	canvas []string
	out    string
}

// NewTerminal returns a compositor that labels hints with keys from km.
func NewTerminal(km *input.KeyMap) *Terminal {
	return &Terminal{Keys: km, help: help.New()}
}

// Output returns the last completed frame.
func (t *Terminal) Output() string { return t.out }

// BeginFrame clears the canvas.
func (t *Terminal) BeginFrame(fc *FrameContext) {
	t.width = max(fc.Width, 1)
	t.height = max(fc.Height-1, 1)
	blank := strings.Repeat(" ", t.width)
	t.canvas = make([]string, t.height)
	for i := range t.canvas {
		t.canvas[i] = blank
	}
}

// RenderView draws v over whatever is already on the canvas. Views with their
// own translucency are drawn as centered dialogs, the rest fill the screen.
func (t *Terminal) RenderView(v *view.Node, fc *FrameContext) {
	alpha := v.Alpha()
	if alpha <= 0 {
		return
	}
	st := fc.Theme.styles(alpha)
	body := t.drawNode(v, st, true)

	var block string
	x, y := 0, 0
	if v.IsTranslucent() && !v.ForceTranslucent() {
		block = st.Dialog.MaxWidth(t.width).MaxHeight(t.height).Render(body)
		x = (t.width - lipgloss.Width(block)) / 2
		y = (t.height - lipgloss.Height(block)) / 2
	} else {
		block = st.Box.
			Width(max(t.width-2, 0)).
			Height(max(t.height-2, 0)).
			MaxHeight(t.height).
			Render(body)
	}
	x += int(math.Round(v.Offset() + v.Shake()))

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= t.height {
			continue
		}
		t.canvas[row] = splice(t.canvas[row], line, x, t.width)
	}
}

// EndFrame adds the framerate counter and the hint footer.
func (t *Terminal) EndFrame(fc *FrameContext) {
	st := fc.Theme.styles(1)
	if fc.FPS != "" {
		counter := st.FPS.Render(fc.FPS)
		t.canvas[0] = splice(t.canvas[0], counter, t.width-ansi.StringWidth(counter), t.width)
	}

	t.help.Width = t.width
	t.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(fc.Theme.Accent))
	t.help.Styles.ShortDesc = st.Muted
	t.help.Styles.ShortSeparator = st.Muted
	footer := t.help.ShortHelpView(input.HelpKeyMap{Keys: t.Keys, Hints: fc.Hints}.ShortHelp())

	t.out = strings.Join(t.canvas, "\n") + "\n" + footer
}

func (t *Terminal) drawNode(n *view.Node, st styles, top bool) string {
	children := n.Children()
	if !top && len(children) == 0 {
		return t.drawLeaf(n, st)
	}

	var parts []string
	if top {
		parts = append(parts, st.Title.Render(runewidth.Truncate(n.Name, t.width, "…")))
		if n.Text != "" {
			parts = append(parts, st.Muted.Render(n.Text))
		}
		parts = append(parts, "")
	}

	var drawn []string
	for _, c := range children {
		drawn = append(drawn, t.drawNode(c, st, false))
	}
	if box, ok := n.Layout().(*view.Box); ok && box.Axis == view.Horizontal {
		spaced := make([]string, 0, 2*len(drawn))
		for i, d := range drawn {
			if i > 0 {
				spaced = append(spaced, "  ")
			}
			spaced = append(spaced, d)
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, spaced...))
	} else if len(drawn) > 0 {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, drawn...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (t *Terminal) drawLeaf(n *view.Node, st styles) string {
	indent := strings.Repeat(" ", max(0, 1+int(math.Round(n.Shake()))))
	label := runewidth.Truncate(n.Name, maxLabelWidth, "…")
	var line string
	if n.IsFocused() {
		line = st.Selected.Render("›" + indent + label)
	} else {
		line = st.Normal.Render(" " + indent + label)
	}
	if n.Text != "" {
		line += " " + st.Muted.Render(n.Text)
	}
	return line
}

// splice writes overlay over base starting at cell x, keeping base's cells on
// both sides. Both strings may contain ANSI sequences.
func splice(base, overlay string, x, width int) string {
	ow := ansi.StringWidth(overlay)
	if x < 0 {
		overlay = ansi.TruncateLeft(overlay, -x, "")
		ow += x
		x = 0
	}
	if ow <= 0 || x >= width {
		return base
	}
	if x+ow > width {
		overlay = ansi.Truncate(overlay, width-x, "")
		ow = width - x
	}
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+ow, "")
	return left + overlay + right
}
