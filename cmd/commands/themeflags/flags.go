// Package themeflags adds the theme setting flags shared by several
// commands and turns them into a theme.Config.
package themeflags

import (
	"fmt"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/theme"

	"github.com/spf13/pflag"
)

// Names lists the config keys exposed as flags, in help order.
var Names = []string{
	"theme",
	"accent-color",
	"gray-color",
	"radius",
	"scaling",
	"panel-background",
	"has-background",
}

// Add registers one string flag per theme key on fs.
func Add(fs *pflag.FlagSet) {
	for _, name := range Names {
		spec := config.Lookup(name)
		fs.String(name, "", spec.Description)
	}
}

// Parse returns the settings given on the command line. Flags that were
// not passed stay unset.
func Parse(fs *pflag.FlagSet) (theme.Config, error) {
	var cfg config.Config
	for _, name := range Names {
		flag := fs.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		spec := config.Lookup(name)
		value, err := spec.Parse(flag.Value.String())
		if err != nil {
			return theme.Config{}, fmt.Errorf("--%s: %w", name, err)
		}
		spec.Set(&cfg, value)
	}
	return cfg.ThemeConfig(), nil
}
