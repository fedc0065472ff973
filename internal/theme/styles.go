package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/unkn0wn-root/tinct/internal/colorspec"
)

// Styles is the render-ready form of a Theme: lipgloss styles a view layer
// can use directly without knowing about color forms or fallback lists.
type Styles struct {
	View              lipgloss.Style
	Title             lipgloss.Style
	TitleSecondary    lipgloss.Style
	Highlight         lipgloss.Style
	HighlightInactive lipgloss.Style
	Shadow            lipgloss.Style
}

// BuildStyles maps a resolved theme onto lipgloss styles. The borders enum
// picks the lipgloss border set; shadow only yields a styled block when the
// theme enables it.
func BuildStyles(t Theme) Styles {
	view := lipgloss.NewStyle().
		Foreground(t.Palette.Primary.Lipgloss()).
		Background(t.Palette.View.Lipgloss())
	switch t.Borders {
	case BordersNone:
	case BordersSimple:
		view = view.Border(lipgloss.NormalBorder()).
			BorderForeground(t.Palette.Secondary.Lipgloss())
	case BordersOutset:
		view = view.Border(lipgloss.ThickBorder()).
			BorderForeground(t.Palette.Secondary.Lipgloss())
	}

	styles := Styles{
		View: view,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Palette.TitlePrimary.Lipgloss()),
		TitleSecondary: lipgloss.NewStyle().
			Foreground(t.Palette.TitleSecondary.Lipgloss()),
		Highlight: lipgloss.NewStyle().
			Background(t.Palette.Highlight.Lipgloss()).
			Foreground(ReadableForeground(t.Palette.Highlight)),
		HighlightInactive: lipgloss.NewStyle().
			Background(t.Palette.HighlightInactive.Lipgloss()).
			Foreground(ReadableForeground(t.Palette.HighlightInactive)),
	}
	if t.Shadow {
		styles.Shadow = lipgloss.NewStyle().
			Background(t.Palette.Shadow.Lipgloss())
	}
	return styles
}

// Nominal sRGB values for the 16 ANSI slots, used only to estimate
// perceived lightness. Actual rendering stays on the palette index.
var ansiHex = [16]string{
	"#000000", "#800000", "#008000", "#808000",
	"#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00",
	"#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

// ReadableForeground picks black or white text for a given background so
// highlighted content stays legible on both dark and bright palettes.
func ReadableForeground(background colorspec.ColorSpec) lipgloss.TerminalColor {
	hex := background.Hex()
	if background.Kind == colorspec.KindBase {
		idx := background.AnsiIndex()
		if idx < 0 {
			return lipgloss.Color("#ffffff")
		}
		hex = ansiHex[idx]
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("#ffffff")
	}
	l, _, _ := col.Lab()
	if l > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
