package colour

import (
	"fmt"
	"sort"
)

// SuggestionType tags how a palette completion suggestion was derived.
type SuggestionType string

const (
	SuggestionLighter    SuggestionType = "lighter"
	SuggestionDarker     SuggestionType = "darker"
	SuggestionMuted      SuggestionType = "muted"
	SuggestionVibrant    SuggestionType = "vibrant"
	SuggestionHueGap     SuggestionType = "hue-gap"
	SuggestionComplement SuggestionType = "complement"
)

// Suggestion is one proposed addition to an existing palette.
type Suggestion struct {
	Type   SuggestionType `json:"type"`
	Color  Color          `json:"color"`
	Reason string         `json:"reason"`
}

const (
	maxSuggestions = 6

	// Thresholds for the heuristic rules, in HSL percentage points and
	// wheel degrees.
	lightVariantBelowL  = 85.0
	darkVariantAboveL   = 20.0
	mutedVariantAboveS  = 30.0
	vibrantVariantBelowS = 80.0
	hueGapMinDegrees    = 60.0
	complementNearBy    = 30.0

	lightnessStep  = 20.0
	saturationStep = 30.0
)

// CompletionSuggestions proposes up to maxSuggestions colours that would
// round out an existing palette: tonal variants of the dominant colour,
// fills for large gaps on the hue wheel, and a complementary accent when
// none is present. An empty palette yields no suggestions.
func CompletionSuggestions(palette []Color) []Suggestion {
	if len(palette) == 0 {
		return nil
	}

	stats := paletteStats(palette)
	dominant := palette[0].HSL
	var suggestions []Suggestion

	if stats.maxL < lightVariantBelowL {
		hsl := HSL{H: dominant.H, S: dominant.S, L: clampPercent(dominant.L + lightnessStep)}
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionLighter,
			Color:  NewColor(HSLToRGB(hsl)),
			Reason: "A lighter tint of the dominant colour adds headroom for backgrounds and highlights.",
		})
	}

	if stats.minL > darkVariantAboveL {
		hsl := HSL{H: dominant.H, S: dominant.S, L: clampPercent(dominant.L - lightnessStep)}
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionDarker,
			Color:  NewColor(HSLToRGB(hsl)),
			Reason: "A darker shade of the dominant colour anchors the palette for text and depth.",
		})
	}

	if stats.meanS > mutedVariantAboveS {
		hsl := HSL{H: dominant.H, S: clampPercent(dominant.S - saturationStep), L: dominant.L}
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionMuted,
			Color:  NewColor(HSLToRGB(hsl)),
			Reason: "A muted variant softens an otherwise saturated palette.",
		})
	}

	if stats.meanS < vibrantVariantBelowS {
		hsl := HSL{H: dominant.H, S: clampPercent(dominant.S + saturationStep), L: dominant.L}
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionVibrant,
			Color:  NewColor(HSLToRGB(hsl)),
			Reason: "A more saturated variant gives the palette a vivid accent.",
		})
	}

	suggestions = append(suggestions, hueGapSuggestions(palette, stats)...)

	if s, ok := complementSuggestion(palette, dominant); ok {
		suggestions = append(suggestions, s)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

type hslStats struct {
	meanS float64
	meanL float64
	minL  float64
	maxL  float64
}

func paletteStats(palette []Color) hslStats {
	stats := hslStats{minL: 100}
	for _, c := range palette {
		stats.meanS += c.HSL.S
		stats.meanL += c.HSL.L
		if c.HSL.L < stats.minL {
			stats.minL = c.HSL.L
		}
		if c.HSL.L > stats.maxL {
			stats.maxL = c.HSL.L
		}
	}
	n := float64(len(palette))
	stats.meanS /= n
	stats.meanL /= n
	return stats
}

// hueGapSuggestions finds the circular gaps between consecutive palette hues
// and proposes a midpoint fill for the largest gaps exceeding the threshold.
func hueGapSuggestions(palette []Color, stats hslStats) []Suggestion {
	if len(palette) < 2 {
		return nil
	}

	hues := make([]float64, len(palette))
	for i, c := range palette {
		hues[i] = c.HSL.H
	}
	sort.Float64s(hues)

	type gap struct {
		start float64
		width float64
	}
	gaps := make([]gap, 0, len(hues))
	for i := range hues {
		next := hues[(i+1)%len(hues)]
		width := next - hues[i]
		if width < 0 {
			width += 360
		}
		gaps = append(gaps, gap{start: hues[i], width: width})
	}

	sort.Slice(gaps, func(i, j int) bool { return gaps[i].width > gaps[j].width })

	var suggestions []Suggestion
	for _, g := range gaps {
		if g.width <= hueGapMinDegrees {
			break
		}
		mid := normalizeHue(g.start + g.width/2)
		hsl := HSL{H: mid, S: stats.meanS, L: stats.meanL}
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionHueGap,
			Color:  NewColor(HSLToRGB(hsl)),
			Reason: fmt.Sprintf("Fills a %.0f° gap on the colour wheel around hue %.0f°.", g.width, mid),
		})
	}
	return suggestions
}

// complementSuggestion proposes the dominant colour's complement as an
// accent when no existing hue sits within complementNearBy degrees of it.
func complementSuggestion(palette []Color, dominant HSL) (Suggestion, bool) {
	complement := normalizeHue(dominant.H + 180)
	for _, c := range palette {
		if HueDistance(c.HSL.H, complement) <= complementNearBy {
			return Suggestion{}, false
		}
	}

	hsl := HSL{H: complement, S: dominant.S, L: dominant.L}
	return Suggestion{
		Type:   SuggestionComplement,
		Color:  NewColor(HSLToRGB(hsl)),
		Reason: "The palette has no colour near the dominant hue's complement; this adds a contrasting accent.",
	}, true
}
