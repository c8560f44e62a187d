package tenant

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "tenant delete" command.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <tenant>",
		Aliases: []string{"rm"},
		Short:   "Delete a tenant's stored theme",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted theme for tenant %q\n", args[0])
			return nil
		},
	}
}
