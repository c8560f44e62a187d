package config

import (
	"fmt"
	"strconv"
	"strings"

	"nathanbeddoewebdev/twui/internal/theme"

	"github.com/charmbracelet/log"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "accent-color").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Options lists the accepted values, in display order. Empty means
	// free-form.
	Options []string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save). The value must have been
	// normalized by Parse; an empty value clears the key.
	Set func(cfg *Config, value string)

	// Parse validates raw input and returns its canonical form.
	Parse func(raw string) (string, error)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "theme",
		Description: "Color mode: light or dark",
		Options:     optionStrings(theme.Modes),
		Get:         func(cfg *Config) string { return string(cfg.Theme) },
		Set:         func(cfg *Config, v string) { cfg.Theme = theme.Mode(v) },
		Parse:       parseWith(theme.ParseMode),
	},
	{
		Name:        "accent-color",
		Description: "Accent hue used for primary colors",
		Options:     optionStrings(theme.AccentColors),
		Get:         func(cfg *Config) string { return string(cfg.AccentColor) },
		Set:         func(cfg *Config, v string) { cfg.AccentColor = theme.AccentColor(v) },
		Parse:       parseWith(theme.ParseAccentColor),
	},
	{
		Name:        "gray-color",
		Description: "Neutral hue; auto follows the accent",
		Options:     optionStrings(theme.GrayColors),
		Get:         func(cfg *Config) string { return string(cfg.GrayColor) },
		Set:         func(cfg *Config, v string) { cfg.GrayColor = theme.GrayColor(v) },
		Parse:       parseWith(theme.ParseGrayColor),
	},
	{
		Name:        "radius",
		Description: "Corner radius step",
		Options:     optionStrings(theme.RadiusScales),
		Get:         func(cfg *Config) string { return string(cfg.Radius) },
		Set:         func(cfg *Config, v string) { cfg.Radius = theme.RadiusScale(v) },
		Parse:       parseWith(theme.ParseRadius),
	},
	{
		Name:        "scaling",
		Description: "UI scaling percentage",
		Options:     optionStrings(theme.Scalings),
		Get:         func(cfg *Config) string { return string(cfg.Scaling) },
		Set:         func(cfg *Config, v string) { cfg.Scaling = theme.Scaling(v) },
		Parse:       parseWith(theme.ParseScaling),
	},
	{
		Name:        "panel-background",
		Description: "Panel painting: solid or translucent",
		Options:     optionStrings(theme.PanelBackgrounds),
		Get:         func(cfg *Config) string { return string(cfg.PanelBackground) },
		Set:         func(cfg *Config, v string) { cfg.PanelBackground = theme.PanelBackground(v) },
		Parse:       parseWith(theme.ParsePanelBackground),
	},
	{
		Name:        "has-background",
		Description: "Whether the page background is painted",
		Options:     []string{"true", "false"},
		Get: func(cfg *Config) string {
			if cfg.HasBackground == nil {
				return ""
			}
			return strconv.FormatBool(*cfg.HasBackground)
		},
		Set: func(cfg *Config, v string) {
			if v == "" {
				cfg.HasBackground = nil
				return
			}
			cfg.HasBackground = theme.Bool(v == "true")
		},
		Parse: func(raw string) (string, error) {
			b, err := theme.ParseBool(raw)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(b), nil
		},
	},
	{
		Name:        "tenant",
		Description: "Default tenant for theme commands",
		Get:         func(cfg *Config) string { return cfg.Tenant },
		Set:         func(cfg *Config, v string) { cfg.Tenant = v },
		Parse: func(raw string) (string, error) {
			v := strings.TrimSpace(raw)
			if !theme.ValidTenantID(v) {
				return "", fmt.Errorf("%w: invalid tenant id %q", theme.ErrInvalidValue, raw)
			}
			return v, nil
		},
	},
	{
		Name:        "log-level",
		Description: "Log verbosity: debug, info, warn or error",
		Options:     []string{"debug", "info", "warn", "error"},
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Parse: func(raw string) (string, error) {
			v := strings.ToLower(strings.TrimSpace(raw))
			if _, err := log.ParseLevel(v); err != nil {
				return "", fmt.Errorf("invalid log level %q: %w", raw, err)
			}
			return v, nil
		},
	},
	{
		Name:        "database-path",
		Description: "Location of the tenant theme database",
		Get:         func(cfg *Config) string { return cfg.DatabasePath },
		Set:         func(cfg *Config, v string) { cfg.DatabasePath = v },
		Parse: func(raw string) (string, error) {
			return strings.TrimSpace(raw), nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func optionStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func parseWith[T ~string](parse func(string) (T, error)) func(string) (string, error) {
	return func(raw string) (string, error) {
		v, err := parse(raw)
		if err != nil {
			return "", err
		}
		return string(v), nil
	}
}
