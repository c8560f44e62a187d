// Package theme turns a declarative theme configuration into the CSS custom
// properties consumed by twui stylesheets.
//
// Everything in this package is pure: the same Config always produces the
// same Variables, and nothing here touches the filesystem or a document.
package theme

// Mode is the color mode a stylesheet targets.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// AccentColor names one of the accent hues.
type AccentColor string

const (
	AccentGray    AccentColor = "gray"
	AccentGold    AccentColor = "gold"
	AccentBronze  AccentColor = "bronze"
	AccentBrown   AccentColor = "brown"
	AccentYellow  AccentColor = "yellow"
	AccentAmber   AccentColor = "amber"
	AccentOrange  AccentColor = "orange"
	AccentTomato  AccentColor = "tomato"
	AccentRed     AccentColor = "red"
	AccentRuby    AccentColor = "ruby"
	AccentCrimson AccentColor = "crimson"
	AccentPink    AccentColor = "pink"
	AccentPlum    AccentColor = "plum"
	AccentPurple  AccentColor = "purple"
	AccentViolet  AccentColor = "violet"
	AccentIris    AccentColor = "iris"
	AccentIndigo  AccentColor = "indigo"
	AccentBlue    AccentColor = "blue"
	AccentCyan    AccentColor = "cyan"
	AccentTeal    AccentColor = "teal"
	AccentJade    AccentColor = "jade"
	AccentGreen   AccentColor = "green"
	AccentGrass   AccentColor = "grass"
	AccentLime    AccentColor = "lime"
	AccentMint    AccentColor = "mint"
	AccentSky     AccentColor = "sky"
)

// GrayColor names one of the neutral hues. GrayAuto derives the gray hue
// from the accent.
type GrayColor string

const (
	GrayAuto  GrayColor = "auto"
	GrayGray  GrayColor = "gray"
	GrayMauve GrayColor = "mauve"
	GraySlate GrayColor = "slate"
	GraySage  GrayColor = "sage"
	GrayOlive GrayColor = "olive"
	GraySand  GrayColor = "sand"
)

// RadiusScale is the corner radius step.
type RadiusScale string

const (
	RadiusNone   RadiusScale = "none"
	RadiusSmall  RadiusScale = "small"
	RadiusMedium RadiusScale = "medium"
	RadiusLarge  RadiusScale = "large"
	RadiusFull   RadiusScale = "full"
)

// Scaling is the global UI scaling percentage.
type Scaling string

const (
	Scaling90  Scaling = "90%"
	Scaling95  Scaling = "95%"
	Scaling100 Scaling = "100%"
	Scaling105 Scaling = "105%"
	Scaling110 Scaling = "110%"
)

// PanelBackground selects how panels are painted.
type PanelBackground string

const (
	PanelSolid       PanelBackground = "solid"
	PanelTranslucent PanelBackground = "translucent"
)

// Option lists in the order the settings panel presents them.
var (
	Modes = []Mode{ModeLight, ModeDark}

	AccentColors = []AccentColor{
		AccentGray, AccentGold, AccentBronze, AccentBrown, AccentYellow,
		AccentAmber, AccentOrange, AccentTomato, AccentRed, AccentRuby,
		AccentCrimson, AccentPink, AccentPlum, AccentPurple, AccentViolet,
		AccentIris, AccentIndigo, AccentBlue, AccentCyan, AccentTeal,
		AccentJade, AccentGreen, AccentGrass, AccentLime, AccentMint,
		AccentSky,
	}

	GrayColors = []GrayColor{GrayAuto, GrayGray, GrayMauve, GraySlate, GraySage, GrayOlive, GraySand}

	RadiusScales = []RadiusScale{RadiusNone, RadiusSmall, RadiusMedium, RadiusLarge, RadiusFull}

	Scalings = []Scaling{Scaling90, Scaling95, Scaling100, Scaling105, Scaling110}

	PanelBackgrounds = []PanelBackground{PanelSolid, PanelTranslucent}
)

// Config is a theme configuration. Every field except Theme is optional;
// the zero value of an optional field means "use the default", and
// defaults are only ever applied when reading (see Resolved).
type Config struct {
	Theme           Mode            `json:"theme" yaml:"theme" validate:"required,oneof=light dark"`
	AccentColor     AccentColor     `json:"accentColor,omitempty" yaml:"accentColor,omitempty" validate:"omitempty,accent_color"`
	GrayColor       GrayColor       `json:"grayColor,omitempty" yaml:"grayColor,omitempty" validate:"omitempty,oneof=auto gray mauve slate sage olive sand"`
	Radius          RadiusScale     `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitempty,oneof=none small medium large full"`
	Scaling         Scaling         `json:"scaling,omitempty" yaml:"scaling,omitempty" validate:"omitempty,oneof=90% 95% 100% 105% 110%"`
	PanelBackground PanelBackground `json:"panelBackground,omitempty" yaml:"panelBackground,omitempty" validate:"omitempty,oneof=solid translucent"`
	HasBackground   *bool           `json:"hasBackground,omitempty" yaml:"hasBackground,omitempty"`
	TenantID        string          `json:"tenantId,omitempty" yaml:"tenantId,omitempty" validate:"omitempty,tenant_id"`
}

// Bool returns a pointer to b, for filling Config.HasBackground.
func Bool(b bool) *bool { return &b }

// IsDark reports whether the mode is dark. Anything else renders light.
func (m Mode) IsDark() bool { return m == ModeDark }
