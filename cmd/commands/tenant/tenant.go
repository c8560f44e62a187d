package tenant

import (
	"fmt"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/logging"
	"nathanbeddoewebdev/twui/internal/services/themes"

	"github.com/spf13/cobra"
)

// NewCommand returns the "tenant" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage per-tenant themes",
		Long: "Store theme overrides per tenant. A tenant's theme inherits every\n" +
			"setting it does not override from your default theme, and its\n" +
			"stylesheet is scoped with a data-tenant attribute.",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

func openService(cmd *cobra.Command) (*themes.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return themes.Open(cfg, logging.FromContext(cmd.Context()))
}
