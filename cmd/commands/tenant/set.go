package tenant

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/twui/cmd/commands/themeflags"
	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/themestore"

	"github.com/spf13/cobra"
)

// SetCommand returns the "tenant set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <tenant>",
		Short: "Store theme overrides for a tenant",
		Long: "Store theme overrides for a tenant. Given settings are merged into\n" +
			"the tenant's existing overrides unless --replace is passed.\n\n" +
			"Examples:\n" +
			"  twui tenant set acme --theme dark --accent-color ruby\n" +
			"  twui tenant set acme --file acme.yaml --replace",
		Args: cobra.ExactArgs(1),
		RunE: runSet,
	}

	cmd.Flags().StringP("file", "f", "", "YAML theme file with the overrides")
	cmd.Flags().Bool("replace", false, "Replace the stored overrides instead of merging")
	themeflags.Add(cmd.Flags())

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	tenant := args[0]
	file, _ := cmd.Flags().GetString("file")
	replace, _ := cmd.Flags().GetBool("replace")

	if !theme.ValidTenantID(tenant) {
		return fmt.Errorf("invalid tenant id %q", tenant)
	}

	overrides, err := themeflags.Parse(cmd.Flags())
	if err != nil {
		return err
	}
	if file != "" {
		fromFile, err := config.LoadThemeFile(file)
		if err != nil {
			return err
		}
		overrides = theme.Merge(fromFile, overrides)
	}

	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	next := overrides
	if !replace {
		stored, err := svc.Get(cmd.Context(), tenant)
		switch {
		case errors.Is(err, themestore.ErrNotFound):
		case err != nil:
			return err
		default:
			next = theme.Merge(stored, overrides)
		}
	}

	if err := svc.Save(cmd.Context(), tenant, next); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme saved for tenant %q\n", tenant)
	return nil
}
