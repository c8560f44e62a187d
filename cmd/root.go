package cmd

import (
	"context"
	"fmt"
	"os"

	cfgcmd "nathanbeddoewebdev/twui/cmd/commands/config"
	"nathanbeddoewebdev/twui/cmd/commands/history"
	"nathanbeddoewebdev/twui/cmd/commands/tenant"
	themecmd "nathanbeddoewebdev/twui/cmd/commands/theme"
	"nathanbeddoewebdev/twui/internal/auditlog"
	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/logging"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X nathanbeddoewebdev/twui/cmd.Version=...".
var Version = "dev"

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "twui",
		Short: "Generate and manage multi-tenant UI themes",
		Long: `twui computes the CSS custom properties of a UI theme from a small
declarative configuration: mode, accent and gray colors, radius, scaling and
panel background. Themes can be scoped to tenants, stored, previewed in an
interactive panel and exported as stylesheets.

Quick start:
  twui theme generate --accent-color teal     # Print a stylesheet
  twui theme panel                            # Interactive settings panel
  twui tenant set acme --theme dark           # Store a tenant theme
  twui theme export --dir ./themes            # Write every stylesheet`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default from config)")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	cmd.AddCommand(themecmd.NewCommand())
	cmd.AddCommand(tenant.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(versionCommand())

	return cmd
}

// setupLogging builds the logger from flags and config and stores it on the
// command context, together with the command path for the change history.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")

	if level == "" {
		if cfg, err := config.Load(); err == nil {
			level = cfg.LogLevel
		}
	}

	logger, err := logging.New(logging.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  level,
		JSON:   jsonLogs,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = auditlog.WithMetadata(ctx, auditlog.Metadata{Command: cmd.CommandPath()})
	cmd.SetContext(logging.WithContext(ctx, logger))
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the twui version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "twui %s\n", Version)
		},
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
