package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/paletta/internal/colour"
)

// formatValue is a pflag.Value that only accepts the supported output
// formats, so bad values fail at flag parse time instead of mid-command.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) Set(v string) error {
	switch strings.ToLower(v) {
	case "hex", "rgb", "json":
		*f = formatValue(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("unsupported format %q (supported: hex, rgb, json)", v)
}

// formatColors renders a colour list in the requested format. The hex and
// rgb formats append the colour's name and share when present; json emits
// the full structure.
func formatColors(colors []colour.Color, format string, preview bool) (string, error) {
	switch format {
	case "hex", "rgb":
		var b strings.Builder
		for _, c := range colors {
			b.WriteString(formatColorLine(c, format, preview))
			b.WriteByte('\n')
		}
		return b.String(), nil
	case "json":
		return renderJSON(colors)
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatColorLine renders one colour as a single output line.
func formatColorLine(c colour.Color, format string, preview bool) string {
	value := c.Hex
	if format == "rgb" {
		value = c.RGB.String()
	}

	var b strings.Builder
	if preview {
		b.WriteString(colour.Preview(c.RGB, 8))
		b.WriteByte(' ')
	}
	b.WriteString(value)

	if c.Percentage > 0 {
		fmt.Fprintf(&b, "  %5.1f%%", c.Percentage)
	}
	if c.Name != "" {
		b.WriteString("  ")
		b.WriteString(c.Name)
	}
	return b.String()
}

// renderJSON marshals a value as indented JSON with a trailing newline.
func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// writeOutput writes the rendered output to a file, or stdout when path is
// empty.
func writeOutput(output, path string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// parseColorArgs converts hex colour arguments into Colors.
func parseColorArgs(args []string) ([]colour.Color, error) {
	colors := make([]colour.Color, 0, len(args))
	for _, arg := range args {
		rgb, err := colour.HexToRGB(arg)
		if err != nil {
			return nil, err
		}
		colors = append(colors, colour.NewColor(rgb))
	}
	return colors, nil
}

// parseColorList converts a comma-separated list of hex colours.
func parseColorList(list string) ([]colour.Color, error) {
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parseColorArgs(parts)
}

// previewEnabled resolves the effective preview setting: the flag when set,
// otherwise the environment default, and never when stdout is not a
// colour-capable terminal.
func previewEnabled(flag bool, flagChanged bool) bool {
	enabled := cfg.Preview
	if flagChanged {
		enabled = flag
	}
	return enabled && colour.SupportsANSIColours()
}
