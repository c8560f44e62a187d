package tenant

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/themestore"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "tenant show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <tenant>",
		Short: "Show the effective theme of a tenant",
		Long: "Show the theme a tenant renders with. Settings the tenant does not\n" +
			"override are marked as inherited.",
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().String("output", "table", "Output format: table or yaml")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	tenant := args[0]
	output, _ := cmd.Flags().GetString("output")

	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	effective, err := svc.Effective(cmd.Context(), tenant)
	if err != nil {
		return err
	}

	if output == "yaml" {
		data, err := config.MarshalTheme(effective)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	stored, err := svc.Get(cmd.Context(), tenant)
	if err != nil && !errors.Is(err, themestore.ErrNotFound) {
		return err
	}

	var eff, own config.Config
	eff.SetThemeConfig(effective)
	own.SetThemeConfig(stored)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tenant:\t%s\n", tenant)
	for _, key := range []string{"theme", "accent-color", "gray-color", "radius", "scaling", "panel-background", "has-background"} {
		spec := config.Lookup(key)
		source := ""
		if spec.Get(&own) == "" {
			source = "  (inherited)"
		}
		fmt.Fprintf(w, "  %s:\t%s%s\n", spec.Name, spec.Get(&eff), source)
	}
	return w.Flush()
}
