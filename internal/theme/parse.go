package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrInvalidValue is wrapped by every parse and validation failure.
var ErrInvalidValue = errors.New("invalid theme value")

// ParseMode parses a theme mode.
func ParseMode(s string) (Mode, error) {
	return parseEnum("theme", s, Modes)
}

// ParseAccentColor parses an accent color name.
func ParseAccentColor(s string) (AccentColor, error) {
	return parseEnum("accent color", s, AccentColors)
}

// ParseGrayColor parses a gray color name, including "auto".
func ParseGrayColor(s string) (GrayColor, error) {
	return parseEnum("gray color", s, GrayColors)
}

// ParseRadius parses a radius step.
func ParseRadius(s string) (RadiusScale, error) {
	return parseEnum("radius", s, RadiusScales)
}

// ParseScaling parses a scaling percentage. The percent sign is optional.
func ParseScaling(s string) (Scaling, error) {
	v := strings.TrimSpace(s)
	if v != "" && !strings.HasSuffix(v, "%") {
		v += "%"
	}
	return parseEnum("scaling", v, Scalings)
}

// ParsePanelBackground parses a panel background mode.
func ParsePanelBackground(s string) (PanelBackground, error) {
	return parseEnum("panel background", s, PanelBackgrounds)
}

// ParseBool parses the has-background flag.
func ParseBool(s string) (bool, error) {
	switch normalize(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean (use true or false)", ErrInvalidValue, s)
}

func parseEnum[T ~string](field, s string, options []T) (T, error) {
	v := normalize(s)
	names := make([]string, len(options))
	for i, opt := range options {
		if string(opt) == v {
			return opt, nil
		}
		names[i] = string(opt)
	}
	if hint := suggest(v, names); hint != "" {
		return "", fmt.Errorf("%w: unknown %s %q (did you mean %q?)", ErrInvalidValue, field, s, hint)
	}
	return "", fmt.Errorf("%w: unknown %s %q (valid: %s)", ErrInvalidValue, field, s, strings.Join(names, ", "))
}

// suggest returns the closest option to input, or "" when nothing matches.
func suggest(input string, options []string) string {
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, options)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
