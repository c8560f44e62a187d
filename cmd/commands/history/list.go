package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [tenant]",
		Short: "List recent theme changes",
		Long: `List recent changes to stored tenant themes, newest first.

Examples:
  twui history list
  twui history list acme --limit 50
  twui history list -o json`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	tenant := ""
	if len(args) == 1 {
		tenant = strings.TrimSpace(args[0])
	}

	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	entries, err := svc.History(cmd.Context(), tenant, limit)
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No theme changes recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTENANT\tACTION\tOUTCOME\tCOMMAND\tDETAIL")
	fmt.Fprintln(w, "----\t------\t------\t-------\t-------\t------")
	for _, entry := range entries {
		command := entry.Command
		if command == "" {
			command = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Tenant,
			entry.Action,
			entry.Outcome,
			command,
			entry.Detail,
		)
	}
	w.Flush()
	return nil
}
