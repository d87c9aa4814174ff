package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jmylchreest/paletta/internal/colour"
)

func TestFormatValueSet(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "hex", want: "hex"},
		{input: "rgb", want: "rgb"},
		{input: "json", want: "json"},
		{input: "JSON", want: "json"},
		{input: "yaml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f formatValue
			err := f.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q) error: %v", tt.input, err)
			}
			if string(f) != tt.want {
				t.Errorf("Set(%q) = %q, want %q", tt.input, f, tt.want)
			}
		})
	}
}

func TestFormatColorsHex(t *testing.T) {
	c := colour.NewColor(colour.RGB{R: 255, G: 87, B: 51})
	c.Name = "Coral"
	c.Percentage = 42.5

	out, err := formatColors([]colour.Color{c}, "hex", false)
	if err != nil {
		t.Fatalf("formatColors() error: %v", err)
	}

	line := strings.TrimSuffix(out, "\n")
	if !strings.HasPrefix(line, "#FF5733") {
		t.Errorf("line %q should start with hex code", line)
	}
	if !strings.Contains(line, "42.5%") {
		t.Errorf("line %q should contain percentage", line)
	}
	if !strings.Contains(line, "Coral") {
		t.Errorf("line %q should contain name", line)
	}
}

func TestFormatColorsRGB(t *testing.T) {
	c := colour.NewColor(colour.RGB{R: 0, G: 128, B: 255})

	out, err := formatColors([]colour.Color{c}, "rgb", false)
	if err != nil {
		t.Fatalf("formatColors() error: %v", err)
	}
	if !strings.Contains(out, "rgb(0, 128, 255)") {
		t.Errorf("output %q should contain rgb() form", out)
	}
}

func TestFormatColorsJSON(t *testing.T) {
	colors := []colour.Color{
		colour.NewColor(colour.RGB{R: 255, G: 0, B: 0}),
		colour.NewColor(colour.RGB{R: 0, G: 0, B: 255}),
	}

	out, err := formatColors(colors, "json", false)
	if err != nil {
		t.Fatalf("formatColors() error: %v", err)
	}

	var decoded []colour.Color
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d colours, want 2", len(decoded))
	}
	if decoded[0].Hex != "#FF0000" {
		t.Errorf("decoded[0].Hex = %q, want #FF0000", decoded[0].Hex)
	}
}

func TestFormatColorsUnknownFormat(t *testing.T) {
	if _, err := formatColors(nil, "yaml", false); err == nil {
		t.Error("formatColors() with unknown format expected error")
	}
}

func TestParseColorArgs(t *testing.T) {
	colors, err := parseColorArgs([]string{"#FF5733", "2ECC71"})
	if err != nil {
		t.Fatalf("parseColorArgs() error: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("parsed %d colours, want 2", len(colors))
	}
	if colors[0].Hex != "#FF5733" {
		t.Errorf("colors[0].Hex = %q, want #FF5733", colors[0].Hex)
	}
	if colors[1].RGB != (colour.RGB{R: 0x2E, G: 0xCC, B: 0x71}) {
		t.Errorf("colors[1].RGB = %+v", colors[1].RGB)
	}
}

func TestParseColorArgsInvalid(t *testing.T) {
	if _, err := parseColorArgs([]string{"#FF5733", "nope"}); err == nil {
		t.Error("parseColorArgs() with invalid hex expected error")
	}
}

func TestParseColorList(t *testing.T) {
	colors, err := parseColorList("#FF5733, #3498DB ,2ECC71")
	if err != nil {
		t.Fatalf("parseColorList() error: %v", err)
	}
	if len(colors) != 3 {
		t.Fatalf("parsed %d colours, want 3", len(colors))
	}
	if colors[1].Hex != "#3498DB" {
		t.Errorf("colors[1].Hex = %q, want #3498DB", colors[1].Hex)
	}
}

func TestWriteOutputToFile(t *testing.T) {
	path := t.TempDir() + "/palette.txt"

	if err := writeOutput("#FF5733\n", path); err != nil {
		t.Fatalf("writeOutput() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "#FF5733\n" {
		t.Errorf("file content = %q, want %q", data, "#FF5733\n")
	}
}
