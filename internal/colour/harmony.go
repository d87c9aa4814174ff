package colour

// HarmonyType identifies one of the colour-theory companion schemes.
type HarmonyType string

const (
	HarmonyComplementary      HarmonyType = "complementary"
	HarmonyAnalogous          HarmonyType = "analogous"
	HarmonyTriadic            HarmonyType = "triadic"
	HarmonySplitComplementary HarmonyType = "split-complementary"
	HarmonyTetradic           HarmonyType = "tetradic"
	HarmonySquare             HarmonyType = "square"
)

// HarmonyScheme is one companion scheme derived from a base colour: the base
// followed by its rotated companions, with a display name and a one-line
// rationale.
type HarmonyScheme struct {
	Type        HarmonyType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Colors      []Color     `json:"colors"`
}

// RotateHue rotates a colour's hue by the given number of degrees, wrapping
// modulo 360 and holding saturation and lightness constant.
func RotateHue(hsl HSL, degrees float64) HSL {
	return HSL{H: normalizeHue(hsl.H + degrees), S: hsl.S, L: hsl.L}
}

// Complementary returns the colour opposite the base on the colour wheel.
func Complementary(hsl HSL) HSL {
	return RotateHue(hsl, 180)
}

// Analogous returns the two neighbours 30 degrees either side of the base.
func Analogous(hsl HSL) [2]HSL {
	return [2]HSL{RotateHue(hsl, -30), RotateHue(hsl, 30)}
}

// Triadic returns the two colours 120 degrees either side of the base.
func Triadic(hsl HSL) [2]HSL {
	return [2]HSL{RotateHue(hsl, 120), RotateHue(hsl, -120)}
}

// SplitComplementary returns the two colours adjacent to the base's
// complement, at +150 and +210 degrees.
func SplitComplementary(hsl HSL) [2]HSL {
	return [2]HSL{RotateHue(hsl, 150), RotateHue(hsl, 210)}
}

// HarmonySchemes generates all six harmony schemes for a base colour.
func HarmonySchemes(base HSL) []HarmonyScheme {
	return []HarmonyScheme{
		{
			Type:        HarmonyComplementary,
			Name:        "Complementary",
			Description: "Opposite hues with maximum contrast for bold, attention-grabbing pairings.",
			Colors:      schemeColors(base, 180),
		},
		{
			Type:        HarmonyAnalogous,
			Name:        "Analogous",
			Description: "Neighbouring hues that blend smoothly for serene, comfortable designs.",
			Colors:      schemeColors(base, -30, 30),
		},
		{
			Type:        HarmonyTriadic,
			Name:        "Triadic",
			Description: "Three evenly spaced hues balancing vibrancy with harmony.",
			Colors:      schemeColors(base, 120, 240),
		},
		{
			Type:        HarmonySplitComplementary,
			Name:        "Split Complementary",
			Description: "The two hues flanking the complement, contrast with less tension.",
			Colors:      schemeColors(base, 150, 210),
		},
		{
			Type:        HarmonyTetradic,
			Name:        "Tetradic",
			Description: "Two complementary pairs forming a rectangle on the wheel, rich but balanced.",
			Colors:      schemeColors(base, 60, 180, 240),
		},
		{
			Type:        HarmonySquare,
			Name:        "Square",
			Description: "Four hues at equal quarter-turns for varied yet even palettes.",
			Colors:      schemeColors(base, 90, 180, 270),
		},
	}
}

// schemeColors builds a scheme's colour list: the base colour followed by
// one companion per hue offset.
func schemeColors(base HSL, offsets ...float64) []Color {
	colors := make([]Color, 0, len(offsets)+1)
	colors = append(colors, NewColor(HSLToRGB(base)))
	for _, deg := range offsets {
		colors = append(colors, NewColor(HSLToRGB(RotateHue(base, deg))))
	}
	return colors
}
