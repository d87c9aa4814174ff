// Package colour implements the colour quantization and colour-science
// engine: palette extraction from raw RGBA pixels, colour space conversions,
// perceptual distance, harmony generation, naming, gradients and palette
// advice. Every operation is a pure function over its inputs.
package colour

import (
	"errors"
	"fmt"
)

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as "#RRGGBB" with uppercase hex digits.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL space.
// Hue is in degrees [0, 360); saturation and lightness are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hsl.H, hsl.S, hsl.L)
}

// Color is a colour carried in every representation consumers need.
// Hex is always derived from RGB ("#" plus six uppercase hex digits).
// Percentage, when non-zero, is this colour's share (0, 100] of the sampled
// pixels after deduplication. Shares of dropped sub-threshold clusters are
// not redistributed, so percentages across a result set may sum below 100.
type Color struct {
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	HSL        HSL     `json:"hsl"`
	Name       string  `json:"name,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
}

// NewColor builds a Color from an RGB value, deriving hex and HSL.
func NewColor(rgb RGB) Color {
	return Color{
		Hex: rgb.Hex(),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}

// NamedColor is one entry of the static reference dictionary.
type NamedColor struct {
	Name string
	RGB  RGB
}

// ColorCluster is a group of sampled colours around a centroid.
// Weight is the fraction [0, 1] of all sampled pixels in the cluster.
type ColorCluster struct {
	Centroid RGB
	Members  []RGB
	Weight   float64
}

// ExtractionResult is the outcome of palette extraction.
// Colors is ordered by descending weight and DominantColor is Colors[0].
type ExtractionResult struct {
	Colors        []Color `json:"colors"`
	DominantColor Color   `json:"dominant_color"`
	// ProcessingTime is the wall-clock duration of the extraction in
	// milliseconds. Observational only.
	ProcessingTime float64 `json:"processing_time_ms"`
}

// ErrEmptyImage is returned by extraction when sampling yields no usable
// pixels, either because the buffer is empty or because every pixel was
// filtered out by the alpha policy.
var ErrEmptyImage = errors.New("image contains no visible pixels to sample")

// InvalidColorFormatError reports a malformed colour string passed to a
// conversion function.
type InvalidColorFormatError struct {
	Input string
}

func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid colour format: %q (expected #RRGGBB)", e.Input)
}
