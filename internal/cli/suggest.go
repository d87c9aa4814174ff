package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

var (
	flagSuggestFormat  = formatValue("hex")
	flagSuggestPreview bool
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <hex>...",
	Short: "Suggest colours that would complete a palette",
	Long: `Analyse a palette and suggest colours that would round it out.

Suggestions cover missing lightness extremes, missing saturation variants,
large gaps on the hue wheel and a complementary accent when the palette has
none. Each suggestion carries a one-line reason.`,
	Example: `  paletta suggest "#E74C3C" "#C0392B" "#922B21"
  paletta suggest 2C3E50 34495E --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().VarP(&flagSuggestFormat, "format", "f", "output format: hex, rgb or json")
	suggestCmd.Flags().BoolVar(&flagSuggestPreview, "preview", false, "show terminal colour swatches")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	palette, err := parseColorArgs(args)
	if err != nil {
		return err
	}

	suggestions := colour.CompletionSuggestions(palette)

	if string(flagSuggestFormat) == "json" {
		output, err := renderJSON(suggestions)
		if err != nil {
			return err
		}
		return writeOutput(output, "")
	}

	if len(suggestions) == 0 {
		fmt.Println("Palette already covers its lightness, saturation and hue range.")
		return nil
	}

	preview := previewEnabled(flagSuggestPreview, cmd.Flags().Changed("preview"))
	for _, s := range suggestions {
		value := s.Color.Hex
		if string(flagSuggestFormat) == "rgb" {
			value = s.Color.RGB.String()
		}
		if preview {
			fmt.Printf("%s %s  %s\n", colour.Preview(s.Color.RGB, 8), value, s.Reason)
			continue
		}
		fmt.Printf("%s  %s\n", value, s.Reason)
	}
	return nil
}
