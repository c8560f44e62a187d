package theme

import (
	"context"
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/twui/internal/services/themes"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ExportCommand returns the "theme export" command.
func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write stylesheets for the default theme and every tenant",
		Long: "Write default.css plus tenants/<tenant>.css for every stored tenant.\n" +
			"With --html a preview page is written next to each stylesheet.\n\n" +
			"Examples:\n" +
			"  twui theme export --dir ./public/themes\n" +
			"  twui theme export --dir ./preview --html",
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("dir", "", "Output directory (required)")
	cmd.Flags().Bool("html", false, "Also write an HTML preview page per theme")
	cmd.MarkFlagRequired("dir")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	html, _ := cmd.Flags().GetBool("html")

	svc, _, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	opts := themes.ExportOptions{HTML: html}
	var written []string
	export := func(ctx context.Context) error {
		var err error
		written, err = svc.ExportAll(ctx, dir, opts)
		return err
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		err = spinner.New().
			Title("Exporting themes...").
			Accessible(os.Getenv("ACCESSIBLE") != "").
			Output(os.Stderr).
			Context(cmd.Context()).
			ActionWithErr(export).
			Run()
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Export cancelled.")
			return nil
		}
	} else {
		err = export(cmd.Context())
	}
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
