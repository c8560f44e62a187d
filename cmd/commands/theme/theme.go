package theme

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/logging"
	"nathanbeddoewebdev/twui/internal/services/themes"

	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Generate, preview and export themes",
		Long: "Generate CSS custom properties from a theme configuration.\n\n" +
			"Settings are layered: built-in defaults, then your configured defaults\n" +
			"(see 'twui config'), then a tenant's stored theme, then a theme file,\n" +
			"then flags.",
	}

	cmd.AddCommand(GenerateCommand())
	cmd.AddCommand(PanelCommand())
	cmd.AddCommand(InitCommand())
	cmd.AddCommand(ScaleCommand())
	cmd.AddCommand(SwatchesCommand())
	cmd.AddCommand(ExportCommand())

	return cmd
}

// tenantFor returns the --tenant flag value, or the configured default
// tenant when the flag was not passed.
func tenantFor(cmd *cobra.Command, cfg *config.Config) string {
	if f := cmd.Flags().Lookup("tenant"); f != nil && f.Changed {
		return strings.TrimSpace(f.Value.String())
	}
	return cfg.Tenant
}

// openService loads the user config and opens the themes service.
func openService(cmd *cobra.Command) (*themes.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	svc, err := themes.Open(cfg, logging.FromContext(cmd.Context()))
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
