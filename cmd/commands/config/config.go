package config

import (
	"nathanbeddoewebdev/twui/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage twui configuration",
		Long: "View and modify persistent twui settings. The theme keys form your\n" +
			"default theme, which every tenant inherits from.\n\n" +
			"Configuration is stored at ~/.config/twui/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
