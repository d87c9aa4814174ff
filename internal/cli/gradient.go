package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

var flagGradientFormat = formatValue("hex")

// gradientCmd represents the gradient command
var gradientCmd = &cobra.Command{
	Use:   "gradient <hex> <hex>...",
	Short: "Generate CSS gradients from a palette",
	Long: `Generate gradient suggestions from two or more colours.

Output covers a linear gradient across the palette, a smoothed five-stop
blend, a duotone of the two most contrasting colours, a radial gradient,
and a conic gradient when the palette has at least three colours. Each
suggestion includes a ready-to-use CSS string.`,
	Example: `  paletta gradient "#FF5733" "#3498DB"
  paletta gradient FF5733 3498DB 2ECC71 --format json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGradient,
}

func init() {
	gradientCmd.Flags().VarP(&flagGradientFormat, "format", "f", "output format: hex or json")
}

func runGradient(cmd *cobra.Command, args []string) error {
	palette, err := parseColorArgs(args)
	if err != nil {
		return err
	}

	gradients := colour.GradientSuggestions(palette)

	if string(flagGradientFormat) == "json" {
		output, err := renderJSON(gradients)
		if err != nil {
			return err
		}
		return writeOutput(output, "")
	}

	for i, g := range gradients {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", g.Name, g.Type)
		fmt.Printf("  %s\n", g.CSS)
	}
	return nil
}
