package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackui/internal/button"
	"stackui/internal/input"
	"stackui/internal/view"
)

func frame(w, h int) *FrameContext {
	return &FrameContext{Width: w, Height: h, Theme: ThemeFor(Dark)}
}

func TestSplice(t *testing.T) {
	assert.Equal(t, "abXYe", splice("abcde", "XY", 2, 5))
	assert.Equal(t, "Yb", splice("ab", "XY", -1, 2), "left overflow is clipped")
	assert.Equal(t, "abcX", splice("abcd", "XY", 3, 4), "right overflow is clipped")
	assert.Equal(t, "abcd", splice("abcd", "XY", 9, 4))
}

func TestTheme_Fade(t *testing.T) {
	th := ThemeFor(Light)
	assert.Equal(t, th.Text, string(th.Fade(th.Text, 1)))
	assert.Equal(t, th.Background, string(th.Fade(th.Text, 0)))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("DARK")
	require.NoError(t, err)
	assert.Equal(t, Dark, v)
	_, err = ParseVariant("neon")
	assert.Error(t, err)
}

func TestTerminal_FrameLayout(t *testing.T) {
	tree := view.NewTree()
	page := tree.New("Settings", view.WithLayout(view.NewBox(view.Vertical)))
	item := tree.New("Network", view.Focusable())
	page.AddChild(item)
	item.FocusGained()

	term := NewTerminal(input.DefaultKeyMap())
	fc := frame(40, 12)
	fc.FPS = "FPS: 060"
	fc.Hints = []input.Hint{{Key: button.A, Label: "OK"}}

	term.BeginFrame(fc)
	term.RenderView(page, fc)
	term.EndFrame(fc)

	out := ansi.Strip(term.Output())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12, "canvas rows plus footer")
	for i, l := range lines[:11] {
		assert.Equal(t, 40, ansi.StringWidth(l), "row %d width", i)
	}
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "› Network")
	assert.True(t, strings.HasSuffix(lines[0], "FPS: 060"), "counter is drawn top right: %q", lines[0])
	assert.Contains(t, lines[11], "OK")
}

func TestTerminal_DialogOverPage(t *testing.T) {
	tree := view.NewTree()
	page := tree.New("Home", view.WithText("background"))
	dialog := tree.New("Confirm", view.Translucent())

	term := NewTerminal(input.DefaultKeyMap())
	fc := frame(60, 20)
	term.BeginFrame(fc)
	term.RenderView(page, fc)
	term.RenderView(dialog, fc)
	term.EndFrame(fc)

	out := ansi.Strip(term.Output())
	assert.Contains(t, out, "Home", "the page below a dialog stays visible")
	assert.Contains(t, out, "Confirm")
}

func TestTerminal_SkipsInvisibleView(t *testing.T) {
	tree := view.NewTree()
	v := tree.New("Ghost")
	v.SetAlpha(0)

	term := NewTerminal(input.DefaultKeyMap())
	fc := frame(30, 6)
	term.BeginFrame(fc)
	term.RenderView(v, fc)
	term.EndFrame(fc)

	assert.NotContains(t, ansi.Strip(term.Output()), "Ghost")
}

func TestRecorder(t *testing.T) {
	tree := view.NewTree()
	a, b := tree.New("a"), tree.New("b")
	var r Recorder
	fc := frame(10, 10)

	r.RenderView(a, fc) // outside a frame: ignored
	r.BeginFrame(fc)
	r.RenderView(a, fc)
	r.RenderView(b, fc)
	r.EndFrame(fc)

	assert.Equal(t, []string{"a", "b"}, r.LastFrame())
	assert.Len(t, r.Frames, 1)
	assert.Same(t, fc, r.Last)
}
