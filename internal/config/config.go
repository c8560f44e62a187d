// Package config handles persistent user configuration for twui.
//
// Configuration is stored as JSON at ~/.config/twui/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). It holds the
// user's default theme settings, which every command starts from.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nathanbeddoewebdev/twui/internal/theme"
)

const (
	appDir   = "twui"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	Theme           theme.Mode            `json:"theme,omitempty"`
	AccentColor     theme.AccentColor     `json:"accent_color,omitempty"`
	GrayColor       theme.GrayColor       `json:"gray_color,omitempty"`
	Radius          theme.RadiusScale     `json:"radius,omitempty"`
	Scaling         theme.Scaling         `json:"scaling,omitempty"`
	PanelBackground theme.PanelBackground `json:"panel_background,omitempty"`
	HasBackground   *bool                 `json:"has_background,omitempty"`
	Tenant          string                `json:"tenant,omitempty"`
	LogLevel        string                `json:"log_level,omitempty"`
	DatabasePath    string                `json:"database_path,omitempty"`
}

// ThemeConfig projects the stored theme settings onto a theme.Config.
// Unset values stay unset; callers resolve defaults when reading.
func (c *Config) ThemeConfig() theme.Config {
	return theme.Config{
		Theme:           c.Theme,
		AccentColor:     c.AccentColor,
		GrayColor:       c.GrayColor,
		Radius:          c.Radius,
		Scaling:         c.Scaling,
		PanelBackground: c.PanelBackground,
		HasBackground:   c.HasBackground,
		TenantID:        c.Tenant,
	}
}

// SetThemeConfig stores every theme field of tc, including unset ones.
func (c *Config) SetThemeConfig(tc theme.Config) {
	c.Theme = tc.Theme
	c.AccentColor = tc.AccentColor
	c.GrayColor = tc.GrayColor
	c.Radius = tc.Radius
	c.Scaling = tc.Scaling
	c.PanelBackground = tc.PanelBackground
	c.HasBackground = tc.HasBackground
	c.Tenant = tc.TenantID
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
