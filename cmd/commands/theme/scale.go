package theme

import (
	"fmt"
	"os"
	"text/tabwriter"

	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/tui/components"
	"nathanbeddoewebdev/twui/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ScaleCommand returns the "theme scale" command.
func ScaleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Print the 12-step color scale of a hue",
		Long: "Print the 12 colors generated for a hue in the given mode.\n\n" +
			"The hue is clamped to 0-360; anything that is not a number uses the\n" +
			"default accent hue. With --chart the lightness curves of both modes\n" +
			"are drawn as well.\n\n" +
			"Examples:\n" +
			"  twui theme scale --hue 5\n" +
			"  twui theme scale --hue 200 --mode dark --chart",
		Args: cobra.NoArgs,
		RunE: runScale,
	}

	cmd.Flags().String("hue", "", "Hue in degrees")
	cmd.Flags().String("accent-color", "", "Named accent color to take the hue from")
	cmd.Flags().String("mode", string(theme.DefaultMode), "Color mode: light or dark")
	cmd.Flags().Bool("chart", false, "Draw the lightness chart")

	return cmd
}

func runScale(cmd *cobra.Command, args []string) error {
	rawHue, _ := cmd.Flags().GetString("hue")
	accent, _ := cmd.Flags().GetString("accent-color")
	rawMode, _ := cmd.Flags().GetString("mode")
	chart, _ := cmd.Flags().GetBool("chart")

	mode, err := theme.ParseMode(rawMode)
	if err != nil {
		return err
	}

	hue := theme.ParseHue(rawHue)
	if accent != "" {
		if rawHue != "" {
			return fmt.Errorf("use either --hue or --accent-color, not both")
		}
		a, err := theme.ParseAccentColor(accent)
		if err != nil {
			return err
		}
		hue = theme.ResolveAccentHue(a)
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tCOLOR\tHEX")
	fmt.Fprintln(w, "----\t-----\t---")
	for i, c := range theme.AccentScaleColors(hue, mode) {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, c, styles.Hex(c))
	}
	w.Flush()

	if chart {
		width := 72
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
			width = w
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, components.ScaleChart(hue, width))
	}
	return nil
}
