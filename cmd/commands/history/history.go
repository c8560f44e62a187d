package history

import (
	"fmt"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/logging"
	"nathanbeddoewebdev/twui/internal/services/themes"

	"github.com/spf13/cobra"
)

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and prune the tenant theme change history",
		Long: "View a local record of every change made to stored tenant themes and\n" +
			"prune old entries.\n\n" +
			"History is kept in the same database as the tenant themes.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}

func openService(cmd *cobra.Command) (*themes.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return themes.Open(cfg, logging.FromContext(cmd.Context()))
}
