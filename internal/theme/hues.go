package theme

const (
	accentSaturation = 78
	graySaturation   = 12

	// swatchStep is the scale step used for panel swatches and the primary color.
	swatchStep = 9
)

var accentHues = map[AccentColor]float64{
	AccentGray:    0,
	AccentGold:    44,
	AccentBronze:  28,
	AccentBrown:   25,
	AccentYellow:  50,
	AccentAmber:   36,
	AccentOrange:  24,
	AccentTomato:  10,
	AccentRed:     5,
	AccentRuby:    350,
	AccentCrimson: 340,
	AccentPink:    320,
	AccentPlum:    300,
	AccentPurple:  285,
	AccentViolet:  270,
	AccentIris:    255,
	AccentIndigo:  245,
	AccentBlue:    220,
	AccentCyan:    200,
	AccentTeal:    180,
	AccentJade:    165,
	AccentGreen:   140,
	AccentGrass:   125,
	AccentLime:    90,
	AccentMint:    155,
	AccentSky:     210,
}

var grayHues = map[GrayColor]float64{
	GrayGray:  0,
	GrayMauve: 280,
	GraySlate: 215,
	GraySage:  140,
	GrayOlive: 95,
	GraySand:  45,
}

// ScaleSteps is the number of steps in every color scale.
const ScaleSteps = 12

var (
	lightLightness = [ScaleSteps]float64{99, 97, 94, 91, 88, 82, 76, 68, 60, 52, 44, 36}
	darkLightness  = [ScaleSteps]float64{12, 14, 16, 18, 22, 28, 36, 44, 52, 60, 70, 82}
)

// Lightness returns the lightness table for mode.
func Lightness(mode Mode) [ScaleSteps]float64 {
	if mode.IsDark() {
		return darkLightness
	}
	return lightLightness
}

var radiusValues = map[RadiusScale]string{
	RadiusNone:   "0px",
	RadiusSmall:  "6px",
	RadiusMedium: "10px",
	RadiusLarge:  "16px",
	RadiusFull:   "999px",
}
