package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

var flagNamePreview bool

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name <hex>...",
	Short: "Name colours by their nearest dictionary entry",
	Long: `Look up the nearest human-readable name for each colour.

Matching uses a perceptually weighted RGB distance against a built-in
dictionary, with a Dark or Light qualifier added when the colour is
noticeably darker or lighter than its nearest entry.`,
	Example: `  paletta name "#8B0000"
  paletta name FF5733 2ECC71 --preview`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().BoolVar(&flagNamePreview, "preview", false, "show terminal colour swatches")
}

func runName(cmd *cobra.Command, args []string) error {
	colors, err := parseColorArgs(args)
	if err != nil {
		return err
	}

	preview := previewEnabled(flagNamePreview, cmd.Flags().Changed("preview"))
	for _, c := range colors {
		name := colour.NearestName(c.RGB)
		if preview {
			fmt.Println(colour.FormatWithLabel(c.RGB, name, 8))
			continue
		}
		fmt.Printf("%s  %s\n", c.Hex, name)
	}
	return nil
}
