package tui

import (
	"errors"
	"os"
	"strings"

	"nathanbeddoewebdev/twui/internal/theme"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("aborted by user")

// RunThemeForm walks the user through every theme setting, starting from
// prefill, and returns the chosen configuration.
func RunThemeForm(prefill theme.Config) (theme.Config, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	cfg := prefill.Resolved()
	background := cfg.Background()
	tenant := cfg.TenantID

	modeField := huh.NewSelect[theme.Mode]().
		Title("Appearance").
		Options(huh.NewOptions(theme.Modes...)...).
		Value(&cfg.Theme)

	accentField := huh.NewSelect[theme.AccentColor]().
		Title("Accent color").
		Options(huh.NewOptions(theme.AccentColors...)...).
		Value(&cfg.AccentColor).
		Height(selectHeight(len(theme.AccentColors), 10))

	grayField := huh.NewSelect[theme.GrayColor]().
		Title("Gray color").
		Description("auto follows the accent").
		Options(huh.NewOptions(theme.GrayColors...)...).
		Value(&cfg.GrayColor)

	radiusField := huh.NewSelect[theme.RadiusScale]().
		Title("Radius").
		Options(huh.NewOptions(theme.RadiusScales...)...).
		Value(&cfg.Radius)

	scalingField := huh.NewSelect[theme.Scaling]().
		Title("Scaling").
		Options(huh.NewOptions(theme.Scalings...)...).
		Value(&cfg.Scaling)

	panelField := huh.NewSelect[theme.PanelBackground]().
		Title("Panel background").
		Options(huh.NewOptions(theme.PanelBackgrounds...)...).
		Value(&cfg.PanelBackground)

	backgroundField := huh.NewConfirm().
		Title("Show page background?").
		Value(&background)

	tenantField := huh.NewInput().
		Title("Tenant").
		Description("Leave empty for an unscoped theme").
		Value(&tenant).
		Validate(func(value string) error {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" && !theme.ValidTenantID(trimmed) {
				return errors.New("tenant ids may only contain letters, digits and . _ : @ / -")
			}
			return nil
		})

	if err := runForm(accessible,
		huh.NewGroup(modeField, accentField, grayField),
		huh.NewGroup(radiusField, scalingField, panelField, backgroundField),
		huh.NewGroup(tenantField),
	); err != nil {
		return theme.Config{}, err
	}

	cfg.HasBackground = theme.Bool(background)
	cfg.TenantID = strings.TrimSpace(tenant)
	return cfg, nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func selectHeight(optionCount, max int) int {
	if optionCount < max {
		return optionCount
	}
	return max
}
