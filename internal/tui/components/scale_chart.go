package components

import (
	"fmt"

	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height of the lightness chart.
const chartHeight = 10

// ScaleChart plots the light and dark lightness curves of the 12-step
// scale, followed by a color strip for each mode at the given hue.
func ScaleChart(hue float64, width int) string {
	light := theme.Lightness(theme.ModeLight)
	dark := theme.Lightness(theme.ModeDark)

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < theme.ScaleSteps {
		plotWidth = theme.ScaleSteps
	}

	chart := asciigraph.PlotMany(
		[][]float64{light[:], dark[:]},
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.SeriesColors(asciigraph.DodgerBlue, asciigraph.LightCoral),
		asciigraph.SeriesLegends("light", "dark"),
		asciigraph.LabelColor(asciigraph.Default),
	)

	lightStrip := theme.AccentScaleColors(hue, theme.ModeLight)
	darkStrip := theme.AccentScaleColors(hue, theme.ModeDark)

	header := styles.Label.Render(fmt.Sprintf("Lightness by step (hue %s)", formatHue(hue)))
	strips := lipgloss.JoinVertical(lipgloss.Left,
		styles.MutedText.Render("light ")+styles.Strip(lightStrip[:]),
		styles.MutedText.Render("dark  ")+styles.Strip(darkStrip[:]),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, "", strips)
}

func formatHue(h float64) string {
	return fmt.Sprintf("%g", theme.ClampHue(h))
}
