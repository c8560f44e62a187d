package theme

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/tui/styles"

	"github.com/spf13/cobra"
)

// SwatchesCommand returns the "theme swatches" command.
func SwatchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatches",
		Short: "List the accent and gray colors with their swatches",
		Long: "List every accent and gray color with the swatch shown for it in\n" +
			"the settings panel.",
		Args: cobra.NoArgs,
		RunE: runSwatches,
	}

	cmd.Flags().String("mode", string(theme.DefaultMode), "Color mode: light or dark")

	return cmd
}

func runSwatches(cmd *cobra.Command, args []string) error {
	rawMode, _ := cmd.Flags().GetString("mode")
	mode, err := theme.ParseMode(rawMode)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tSWATCH\tHEX\t")
	fmt.Fprintln(w, "----\t----\t------\t---\t")
	for _, a := range theme.AccentColors {
		c := theme.AccentSwatch(a, mode)
		fmt.Fprintf(w, "accent\t%s\t%s\t%s\t%s\n", a, c, styles.Hex(c), styles.Swatch(c))
	}
	for _, g := range theme.GrayColors {
		c := theme.GraySwatch(g, mode)
		fmt.Fprintf(w, "gray\t%s\t%s\t%s\t%s\n", g, c, styles.Hex(c), styles.Swatch(c))
	}
	return w.Flush()
}
