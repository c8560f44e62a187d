package theme

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/tui"

	"github.com/spf13/cobra"
)

// InitCommand returns the "theme init" command.
func InitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a theme with an interactive wizard",
		Long: "Walk through every theme setting and save the result.\n\n" +
			"The chosen theme is stored for its tenant, or as your default theme\n" +
			"when no tenant is entered. With --output it is written to a YAML theme\n" +
			"file instead.\n\n" +
			"Examples:\n" +
			"  twui theme init\n" +
			"  twui theme init --tenant acme\n" +
			"  twui theme init --output theme.yaml",
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().String("tenant", "", "Tenant to prefill the wizard from")
	cmd.Flags().StringP("output", "o", "", "Write a YAML theme file instead of saving")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	svc, cfg, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	prefill, err := svc.Effective(cmd.Context(), tenantFor(cmd, cfg))
	if err != nil {
		return err
	}

	chosen, err := tui.RunThemeForm(prefill)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
		return err
	}

	if output != "" {
		data, err := config.MarshalTheme(chosen)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme written to %s\n", output)
		return nil
	}

	if chosen.TenantID != "" {
		if err := svc.Save(cmd.Context(), chosen.TenantID, chosen); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme saved for tenant %q\n", chosen.TenantID)
		return nil
	}

	chosen.TenantID = cfg.Tenant
	cfg.SetThemeConfig(chosen)
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Default theme saved")
	return nil
}
