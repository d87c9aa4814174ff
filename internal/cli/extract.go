package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
	"github.com/jmylchreest/paletta/internal/image"
)

var (
	flagExtractColours     int
	flagExtractFormat      = formatValue("hex")
	flagExtractOutput      string
	flagExtractPreview     bool
	flagExtractTransparent bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract the dominant colours from an image as a ranked palette.

The image may be a local file (JPEG, PNG, GIF, WebP), an HTTP(S) URL, or a
directory, in which case a random image inside it is used. Each palette
entry carries its hex code, RGB and HSL values, nearest colour name and the
share of sampled pixels it covers.`,
	Example: `  paletta extract photo.jpg
  paletta extract --colours 8 --format json wallpaper.png
  paletta extract https://example.com/image.jpg --preview`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&flagExtractColours, "colours", "c", 0, "number of colours to extract (default from PALETTA_COLOURS, else 6)")
	extractCmd.Flags().VarP(&flagExtractFormat, "format", "f", "output format: hex, rgb or json")
	extractCmd.Flags().StringVarP(&flagExtractOutput, "output", "o", "", "write output to a file instead of stdout")
	extractCmd.Flags().BoolVar(&flagExtractPreview, "preview", false, "show terminal colour swatches")
	extractCmd.Flags().BoolVar(&flagExtractTransparent, "include-transparent", false, "sample pixels below the visibility alpha threshold")
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	if err := image.ValidateSource(source); err != nil {
		return err
	}

	resolved, err := image.ResolveSource(source)
	if err != nil {
		return err
	}
	if resolved != source {
		logger.Debug("resolved directory source", "directory", source, "image", resolved)
	}

	img, err := image.NewSmartLoader().Load(resolved)
	if err != nil {
		return err
	}

	buf, width, height := image.ToRGBABuffer(img)
	logger.Debug("loaded image", "source", resolved, "width", width, "height", height)

	count := cfg.ColourCount
	if cmd.Flags().Changed("colours") {
		count = flagExtractColours
	}
	if count < 1 || count > 256 {
		return fmt.Errorf("invalid colour count %d (expected 1-256)", count)
	}

	result, err := colour.ExtractColors(buf, width, height, colour.ExtractOptions{
		ColorCount:         count,
		IncludeTransparent: flagExtractTransparent,
	})
	if err != nil {
		return err
	}
	logger.Debug("extracted palette", "colours", len(result.Colors), "ms", result.ProcessingTime)

	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = string(flagExtractFormat)
	}

	var output string
	if format == "json" {
		output, err = renderJSON(result)
	} else {
		preview := previewEnabled(flagExtractPreview, cmd.Flags().Changed("preview"))
		output, err = formatColors(result.Colors, format, preview)
	}
	if err != nil {
		return err
	}

	return writeOutput(output, flagExtractOutput)
}
