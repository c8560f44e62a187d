package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"nathanbeddoewebdev/twui/internal/theme"

	"gopkg.in/yaml.v3"
)

// LoadThemeFile reads a YAML theme file. Keys use the same camelCase names
// as the JSON form of theme.Config:
//
//	theme: dark
//	accentColor: teal
//	grayColor: auto
//	tenantId: acme
//
// Unknown keys are rejected. The result is validated but defaults are not
// applied.
func LoadThemeFile(path string) (theme.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Config{}, fmt.Errorf("config: failed to read theme file %s: %w", path, err)
	}
	cfg, err := ParseTheme(data)
	if err != nil {
		return theme.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseTheme decodes and validates a YAML theme document. A missing theme
// key means light.
func ParseTheme(data []byte) (theme.Config, error) {
	var cfg theme.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return theme.Config{}, fmt.Errorf("parse theme: %w", err)
	}

	check := cfg
	if check.Theme == "" {
		check.Theme = theme.DefaultMode
	}
	if err := theme.Validate(check); err != nil {
		return theme.Config{}, err
	}
	return cfg, nil
}

// MarshalTheme renders cfg as a YAML theme document.
func MarshalTheme(cfg theme.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal theme: %w", err)
	}
	return data, nil
}
