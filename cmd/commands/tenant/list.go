package tenant

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/twui/internal/theme"

	"github.com/spf13/cobra"
)

// ListCommand returns the "tenant list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants with a stored theme",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("output", "table", "Output format: table or json")

	return cmd
}

type tenantRow struct {
	Tenant    string       `json:"tenant"`
	Config    theme.Config `json:"config"`
	UpdatedAt string       `json:"updatedAt"`
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	records, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}

	if output == "json" {
		rows := make([]tenantRow, len(records))
		for i, r := range records {
			rows[i] = tenantRow{Tenant: r.Tenant, Config: r.Config, UpdatedAt: r.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z")}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tenant themes found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TENANT\tTHEME\tACCENT\tGRAY\tUPDATED")
	fmt.Fprintln(w, "------\t-----\t------\t----\t-------")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Tenant,
			orInherited(string(r.Config.Theme)),
			orInherited(string(r.Config.AccentColor)),
			orInherited(string(r.Config.GrayColor)),
			r.UpdatedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
		)
	}
	return w.Flush()
}

func orInherited(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
