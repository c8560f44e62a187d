package theme

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/document"
	"nathanbeddoewebdev/twui/internal/logging"
	"nathanbeddoewebdev/twui/internal/provider"
	"nathanbeddoewebdev/twui/internal/services/themes"
	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PanelCommand returns the "theme panel" command.
func PanelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Edit a theme in the interactive settings panel",
		Long: "Open the settings panel. Every change is applied immediately; press\n" +
			"enter to save. With --tenant, or a configured default tenant, that\n" +
			"tenant's stored theme is edited; otherwise your default theme.\n\n" +
			"With --preview the live page is also written to an HTML file on every\n" +
			"change.",
		Args: cobra.NoArgs,
		RunE: runPanel,
	}

	cmd.Flags().String("tenant", "", "Tenant whose theme to edit")
	cmd.Flags().String("preview", "", "HTML file to keep in sync with the panel")

	return cmd
}

func runPanel(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the theme panel needs an interactive terminal; use 'twui theme generate' instead")
	}

	preview, _ := cmd.Flags().GetString("preview")

	svc, cfg, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	tenant := tenantFor(cmd, cfg)

	initial, err := svc.Effective(cmd.Context(), tenant)
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	doc := document.New()
	p := provider.New(doc, provider.Options{Default: initial, Logger: logger})
	defer p.Close()

	if preview != "" {
		if err := doc.WriteFile(preview); err != nil {
			return err
		}
		unsubscribe := p.Subscribe(func(theme.Config) {
			if err := doc.WriteFile(preview); err != nil {
				logger.Error("failed to update preview", "path", preview, "err", err)
			}
		})
		defer unsubscribe()
	}

	err = tui.RunThemePanel(tui.PanelOptions{
		Setter: p,
		Save:   saveFunc(cmd, svc, cfg, tenant),
		Tenant: tenant,
	})
	if err != nil {
		return fmt.Errorf("theme panel failed: %w", err)
	}
	return nil
}

// saveFunc stores a panel result for tenant, or as the user's defaults when
// tenant is empty. A tenant keeps only the fields that differ from the
// defaults, so later changes to the defaults still reach it.
func saveFunc(cmd *cobra.Command, svc *themes.Service, cfg *config.Config, tenant string) func(theme.Config) error {
	return func(next theme.Config) error {
		if tenant != "" {
			return svc.Save(cmd.Context(), tenant, theme.Overrides(svc.Defaults(), next))
		}
		next.TenantID = cfg.Tenant
		cfg.SetThemeConfig(next)
		return cfg.Save()
	}
}
