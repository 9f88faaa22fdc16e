package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Variant selects the light or dark palette.
type Variant int

const (
	Light Variant = iota
	Dark
)

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// ParseVariant parses "light" or "dark".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown theme %q", s)
}

// Theme is the palette the terminal renderer draws with. Colors are hex.
type Theme struct {
	Background string
	Text       string
	Accent     string
	Highlight  string
	Muted      string
	Backdrop   string
}

// ThemeFor returns the stock palette for a variant.
func ThemeFor(v Variant) Theme {
	if v == Dark {
		return Theme{
			Background: "#2d2d2d",
			Text:       "#ffffff",
			Accent:     "#00ffcc",
			Highlight:  "#ff5fd7",
			Muted:      "#a0a0a0",
			Backdrop:   "#000000",
		}
	}
	return Theme{
		Background: "#ebebeb",
		Text:       "#2d2d2d",
		Accent:     "#3c5fd0",
		Highlight:  "#31c2d8",
		Muted:      "#8c8c8c",
		Backdrop:   "#000000",
	}
}

// Fade blends fg towards the theme background; alpha 1 is fg, 0 is the
// background.
func (t Theme) Fade(fg string, alpha float64) lipgloss.Color {
	if alpha >= 1 {
		return lipgloss.Color(fg)
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	b, err := colorful.Hex(t.Background)
	if err != nil {
		return lipgloss.Color(fg)
	}
	return lipgloss.Color(b.BlendRgb(f, max(alpha, 0)).Clamped().Hex())
}

// styles are the lipgloss styles for one view at one opacity.
type styles struct {
	Title    lipgloss.Style
	Box      lipgloss.Style
	Dialog   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	FPS      lipgloss.Style
}

func (t Theme) styles(alpha float64) styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Fade(t.Accent, alpha)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Fade(t.Muted, alpha)).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Fade(t.Highlight, alpha)).
			Padding(1, 2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Fade(t.Highlight, alpha)),
		Normal: lipgloss.NewStyle().
			Foreground(t.Fade(t.Text, alpha)),
		Muted: lipgloss.NewStyle().
			Foreground(t.Fade(t.Muted, alpha)),
		FPS: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Backdrop)),
	}
}
