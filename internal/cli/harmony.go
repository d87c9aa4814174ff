package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

var (
	flagHarmonyFormat  = formatValue("hex")
	flagHarmonyPreview bool
)

// harmonyCmd represents the harmony command
var harmonyCmd = &cobra.Command{
	Use:   "harmony <hex>",
	Short: "Generate colour harmony schemes from a base colour",
	Long: `Generate the six classic colour-theory schemes for a base colour:
complementary, analogous, triadic, split complementary, tetradic and
square. Each scheme lists the base colour first, with companions derived by
hue rotation at constant saturation and lightness.`,
	Example: `  paletta harmony "#3498DB"
  paletta harmony 3498DB --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().VarP(&flagHarmonyFormat, "format", "f", "output format: hex, rgb or json")
	harmonyCmd.Flags().BoolVar(&flagHarmonyPreview, "preview", false, "show terminal colour swatches")
}

func runHarmony(cmd *cobra.Command, args []string) error {
	base, err := colour.HexToRGB(args[0])
	if err != nil {
		return err
	}

	schemes := colour.HarmonySchemes(colour.RGBToHSL(base))

	if string(flagHarmonyFormat) == "json" {
		output, err := renderJSON(schemes)
		if err != nil {
			return err
		}
		return writeOutput(output, "")
	}

	preview := previewEnabled(flagHarmonyPreview, cmd.Flags().Changed("preview"))
	for i, scheme := range schemes {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s: %s\n", scheme.Name, scheme.Description)
		body, err := formatColors(scheme.Colors, string(flagHarmonyFormat), preview)
		if err != nil {
			return err
		}
		fmt.Print(body)
	}
	return nil
}
