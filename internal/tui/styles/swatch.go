package styles

import (
	"nathanbeddoewebdev/twui/internal/theme"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// SwatchGlyph is drawn in the swatch color next to color options.
const SwatchGlyph = "●"

// Hex converts a theme color to a #rrggbb string.
func Hex(c theme.HSL) string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

// SwatchColor returns the terminal color for c.
func SwatchColor(c theme.HSL) lipgloss.Color {
	return lipgloss.Color(Hex(c))
}

// Swatch renders a colored glyph for c.
func Swatch(c theme.HSL) string {
	return lipgloss.NewStyle().Foreground(SwatchColor(c)).Render(SwatchGlyph)
}

// Strip renders one block per color, left to right.
func Strip(colors []theme.HSL) string {
	out := ""
	for _, c := range colors {
		out += lipgloss.NewStyle().Background(SwatchColor(c)).Render("  ")
	}
	return out
}
