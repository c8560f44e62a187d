package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Variable is a single CSS custom property.
type Variable struct {
	Name  string
	Value string
}

// Variables is an ordered list of custom properties. Order is stable for a
// given configuration, which keeps serialized output byte-identical.
type Variables []Variable

// Get returns the value of the named variable.
func (v Variables) Get(name string) (string, bool) {
	for _, item := range v {
		if item.Name == name {
			return item.Value, true
		}
	}
	return "", false
}

// Names returns the variable names in order.
func (v Variables) Names() []string {
	names := make([]string, len(v))
	for i, item := range v {
		names[i] = item.Name
	}
	return names
}

// Map returns the variables as a flat name to value mapping.
func (v Variables) Map() map[string]string {
	m := make(map[string]string, len(v))
	for _, item := range v {
		m[item.Name] = item.Value
	}
	return m
}

// Scale holds the 12 colors of one hue, step 1 first.
type Scale [ScaleSteps]string

// Step returns the color at a 1-based step.
func (s Scale) Step(n int) string {
	if n < 1 || n > ScaleSteps {
		return ""
	}
	return s[n-1]
}

// ClampHue limits h to [0, 360]. NaN maps to the default accent hue.
func ClampHue(h float64) float64 {
	if math.IsNaN(h) {
		return accentHues[DefaultAccent]
	}
	return math.Max(0, math.Min(360, h))
}

// ParseHue reads a hue from user input. Input that is not a number yields
// the default accent hue. Numbers too large to represent clamp like any
// other out-of-range hue.
func ParseHue(s string) float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return ClampHue(math.NaN())
	}
	return ClampHue(h)
}

// ResolveAccentHue returns the hue for accent, defaulting to indigo.
func ResolveAccentHue(accent AccentColor) float64 {
	if h, ok := accentHues[accent]; ok {
		return h
	}
	return accentHues[DefaultAccent]
}

// ResolveGrayHue returns the hue for gray. An unset or auto gray follows
// the accent hue.
func ResolveGrayHue(gray GrayColor, accentHue float64) float64 {
	if gray == "" || gray == GrayAuto {
		return ClampHue(accentHue)
	}
	if h, ok := grayHues[gray]; ok {
		return h
	}
	return ClampHue(accentHue)
}

// BuildScale renders the 12-step scale for a hue at the given saturation.
func BuildScale(hue, saturation float64, mode Mode) Scale {
	var scale Scale
	for i, lightness := range Lightness(mode) {
		scale[i] = hsl(hue, saturation, lightness)
	}
	return scale
}

// Generate computes the custom properties for cfg.
func Generate(cfg Config) Variables {
	mode := cfg.Theme
	if mode == "" {
		mode = DefaultMode
	}
	isDark := mode.IsDark()

	accentHue := ResolveAccentHue(cfg.AccentColor)
	grayHue := ResolveGrayHue(cfg.GrayColor, accentHue)
	accent := BuildScale(accentHue, accentSaturation, mode)
	gray := BuildScale(grayHue, graySaturation, mode)

	resolved := cfg.Resolved()

	hasBackground := "1"
	if !cfg.Background() {
		hasBackground = "0"
	}

	panelSolid := gray.Step(1)
	contrast := gray.Step(12)
	if isDark {
		panelSolid = gray.Step(3)
		contrast = gray.Step(1)
	}

	vars := make(Variables, 0, 14+2*ScaleSteps)
	vars = append(vars,
		Variable{"--twui-theme", string(mode)},
		Variable{"--twui-accent-color", string(resolved.AccentColor)},
		Variable{"--twui-gray-color", string(resolved.GrayColor)},
		Variable{"--twui-radius-scale", string(resolved.Radius)},
		Variable{"--twui-radius", radiusValue(resolved.Radius)},
		Variable{"--twui-scaling", string(resolved.Scaling)},
		Variable{"--twui-panel-background", string(resolved.PanelBackground)},
		Variable{"--twui-has-background", hasBackground},
		Variable{"--twui-color-bg", gray.Step(1)},
		Variable{"--twui-color-fg", gray.Step(12)},
		Variable{"--twui-color-panel-solid", panelSolid},
		Variable{"--twui-color-panel-translucent", fmt.Sprintf("color-mix(in srgb, %s 80%%, transparent)", gray.Step(1))},
		Variable{"--twui-color-primary", accent.Step(swatchStep)},
		Variable{"--twui-color-primary-contrast", contrast},
	)
	for i, value := range accent {
		vars = append(vars, Variable{fmt.Sprintf("--accent-%d", i+1), value})
	}
	for i, value := range gray {
		vars = append(vars, Variable{fmt.Sprintf("--gray-%d", i+1), value})
	}
	return vars
}

// Serialize renders variables as "name: value;" declarations, one per line.
func Serialize(vars Variables) string {
	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// HSL is a color in CSS units: hue in degrees, saturation and lightness in
// percent.
type HSL struct {
	H, S, L float64
}

// String renders the color in CSS Color 4 space-separated syntax.
func (c HSL) String() string {
	return hsl(c.H, c.S, c.L)
}

// AccentScaleColors returns the accent scale of an arbitrary hue. The hue
// is clamped.
func AccentScaleColors(hue float64, mode Mode) [ScaleSteps]HSL {
	var out [ScaleSteps]HSL
	for i, l := range Lightness(mode) {
		out[i] = HSL{ClampHue(hue), accentSaturation, l}
	}
	return out
}

// Palette returns the accent and gray scales of cfg as HSL values, for
// renderers that need numbers rather than CSS strings.
func Palette(cfg Config) (accent, gray [ScaleSteps]HSL) {
	mode := cfg.Theme
	if mode == "" {
		mode = DefaultMode
	}
	accentHue := ResolveAccentHue(cfg.AccentColor)
	grayHue := ResolveGrayHue(cfg.GrayColor, accentHue)
	for i, l := range Lightness(mode) {
		accent[i] = HSL{accentHue, accentSaturation, l}
		gray[i] = HSL{grayHue, graySaturation, l}
	}
	return accent, gray
}

// AccentSwatch is the color shown for accent in the settings panel.
func AccentSwatch(accent AccentColor, mode Mode) HSL {
	return HSL{ResolveAccentHue(accent), accentSaturation, Lightness(mode)[swatchStep-1]}
}

// GraySwatch is the color shown for gray in the settings panel. The auto
// swatch previews the default accent hue.
func GraySwatch(gray GrayColor, mode Mode) HSL {
	return HSL{ResolveGrayHue(gray, accentHues[DefaultAccent]), graySaturation, Lightness(mode)[swatchStep-1]}
}

// AccentSwatchColor is AccentSwatch as a CSS color string.
func AccentSwatchColor(accent AccentColor, mode Mode) string {
	return AccentSwatch(accent, mode).String()
}

// GraySwatchColor is GraySwatch as a CSS color string.
func GraySwatchColor(gray GrayColor, mode Mode) string {
	return GraySwatch(gray, mode).String()
}

func radiusValue(r RadiusScale) string {
	if v, ok := radiusValues[r]; ok {
		return v
	}
	return radiusValues[DefaultRadius]
}

func hsl(h, s, l float64) string {
	return "hsl(" + formatNumber(h) + " " + formatNumber(s) + "% " + formatNumber(l) + "%)"
}

// formatNumber prints numbers the way CSS authors write them: no trailing
// zeros and no decimal point for integers.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
