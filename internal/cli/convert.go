package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

var flagConvertFormat = formatValue("hex")

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <hex>...",
	Short: "Convert colours between representations",
	Long: `Convert hex colours to their RGB and HSL representations.

Each argument is a hex colour with or without a leading #. The json format
emits the full structure including the nearest colour name.`,
	Example: `  paletta convert "#FF5733"
  paletta convert --format rgb FF5733 C70039
  paletta convert --format json 2ECC71`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().VarP(&flagConvertFormat, "format", "f", "output format: hex, rgb or json")
}

func runConvert(cmd *cobra.Command, args []string) error {
	colors, err := parseColorArgs(args)
	if err != nil {
		return err
	}
	for i := range colors {
		colors[i].Name = colour.NearestName(colors[i].RGB)
	}

	if string(flagConvertFormat) == "json" {
		output, err := renderJSON(colors)
		if err != nil {
			return err
		}
		return writeOutput(output, "")
	}

	for _, c := range colors {
		fmt.Printf("%s  %s  H:%.0f S:%.0f%% L:%.0f%%  %s\n",
			c.Hex, c.RGB.String(), c.HSL.H, c.HSL.S, c.HSL.L, c.Name)
	}
	return nil
}
