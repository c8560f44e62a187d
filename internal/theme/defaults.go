package theme

const (
	DefaultMode            = ModeLight
	DefaultAccent          = AccentIndigo
	DefaultGray            = GraySlate
	DefaultRadius          = RadiusMedium
	DefaultScaling         = Scaling100
	DefaultPanelBackground = PanelTranslucent
)

// Default returns the configuration used when nothing has been chosen.
func Default() Config {
	return Config{
		Theme:           DefaultMode,
		AccentColor:     DefaultAccent,
		GrayColor:       DefaultGray,
		Radius:          DefaultRadius,
		Scaling:         DefaultScaling,
		PanelBackground: DefaultPanelBackground,
		HasBackground:   Bool(true),
	}
}

// Merge overlays the fields set in next onto base. Unset fields in next
// (empty strings, nil HasBackground) leave base untouched.
func Merge(base, next Config) Config {
	out := base
	if next.Theme != "" {
		out.Theme = next.Theme
	}
	if next.AccentColor != "" {
		out.AccentColor = next.AccentColor
	}
	if next.GrayColor != "" {
		out.GrayColor = next.GrayColor
	}
	if next.Radius != "" {
		out.Radius = next.Radius
	}
	if next.Scaling != "" {
		out.Scaling = next.Scaling
	}
	if next.PanelBackground != "" {
		out.PanelBackground = next.PanelBackground
	}
	if next.HasBackground != nil {
		out.HasBackground = Bool(*next.HasBackground)
	}
	if next.TenantID != "" {
		out.TenantID = next.TenantID
	}
	return out
}

// Overrides returns the fields of next that differ from base. Merging the
// result back onto base yields next again. TenantID is carried as is.
func Overrides(base, next Config) Config {
	out := Config{TenantID: next.TenantID}
	if next.Theme != base.Theme {
		out.Theme = next.Theme
	}
	if next.AccentColor != base.AccentColor {
		out.AccentColor = next.AccentColor
	}
	if next.GrayColor != base.GrayColor {
		out.GrayColor = next.GrayColor
	}
	if next.Radius != base.Radius {
		out.Radius = next.Radius
	}
	if next.Scaling != base.Scaling {
		out.Scaling = next.Scaling
	}
	if next.PanelBackground != base.PanelBackground {
		out.PanelBackground = next.PanelBackground
	}
	if next.HasBackground != nil && *next.HasBackground != base.Background() {
		out.HasBackground = Bool(*next.HasBackground)
	}
	return out
}

// Resolved returns c with every unset field replaced by its default.
// The receiver is not modified.
func (c Config) Resolved() Config {
	return Merge(Default(), c)
}

// Background reports whether the background is shown; unset means true.
func (c Config) Background() bool {
	return c.HasBackground == nil || *c.HasBackground
}
