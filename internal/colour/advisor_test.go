package colour

import "testing"

func colorFromHSL(h, s, l float64) Color {
	return NewColor(HSLToRGB(HSL{H: h, S: s, L: l}))
}

func suggestionTypes(suggestions []Suggestion) map[SuggestionType]int {
	types := make(map[SuggestionType]int)
	for _, s := range suggestions {
		types[s.Type]++
	}
	return types
}

func TestCompletionSuggestionsEmptyPalette(t *testing.T) {
	if got := CompletionSuggestions(nil); len(got) != 0 {
		t.Errorf("empty palette should yield no suggestions, got %d", len(got))
	}
}

func TestCompletionSuggestionsBounded(t *testing.T) {
	palette := []Color{
		colorFromHSL(0, 50, 50),
		colorFromHSL(90, 50, 50),
		colorFromHSL(200, 50, 50),
	}

	suggestions := CompletionSuggestions(palette)

	if len(suggestions) > maxSuggestions {
		t.Errorf("got %d suggestions, cap is %d", len(suggestions), maxSuggestions)
	}
	for _, s := range suggestions {
		if s.Reason == "" {
			t.Errorf("suggestion %s has no reason", s.Type)
		}
		if s.Color.Hex == "" {
			t.Errorf("suggestion %s has no colour", s.Type)
		}
	}
}

func TestCompletionSuggestionsLightnessVariants(t *testing.T) {
	// Mid-lightness palette: both a lighter and a darker variant apply.
	palette := []Color{colorFromHSL(120, 50, 50), colorFromHSL(140, 50, 55)}

	types := suggestionTypes(CompletionSuggestions(palette))

	if types[SuggestionLighter] == 0 {
		t.Error("expected a lighter variant for maxL < 85")
	}
	if types[SuggestionDarker] == 0 {
		t.Error("expected a darker variant for minL > 20")
	}
}

func TestCompletionSuggestionsNoLighterWhenBright(t *testing.T) {
	palette := []Color{colorFromHSL(120, 50, 50), colorFromHSL(140, 50, 90)}

	types := suggestionTypes(CompletionSuggestions(palette))

	if types[SuggestionLighter] != 0 {
		t.Error("palette already has a near-white colour, no lighter variant expected")
	}
}

func TestCompletionSuggestionsSaturationVariants(t *testing.T) {
	// Mean saturation 50: both muted and vibrant variants apply.
	palette := []Color{colorFromHSL(30, 50, 50)}

	types := suggestionTypes(CompletionSuggestions(palette))

	if types[SuggestionMuted] == 0 {
		t.Error("expected a muted variant for meanS > 30")
	}
	if types[SuggestionVibrant] == 0 {
		t.Error("expected a vibrant variant for meanS < 80")
	}
}

func TestCompletionSuggestionsHueGap(t *testing.T) {
	// Two hues 40° apart leave a 320° gap around the rest of the wheel.
	palette := []Color{colorFromHSL(0, 60, 50), colorFromHSL(40, 60, 50)}

	suggestions := CompletionSuggestions(palette)
	types := suggestionTypes(suggestions)

	if types[SuggestionHueGap] == 0 {
		t.Fatal("expected a hue-gap fill suggestion")
	}

	for _, s := range suggestions {
		if s.Type == SuggestionHueGap {
			// Midpoint of the 40..360 gap is 200.
			if HueDistance(s.Color.HSL.H, 200) > 5 {
				t.Errorf("gap fill hue = %v, want ~200", s.Color.HSL.H)
			}
		}
	}
}

func TestCompletionSuggestionsComplement(t *testing.T) {
	// Narrow warm palette: nothing near the complement of the dominant red.
	palette := []Color{colorFromHSL(0, 60, 50), colorFromHSL(20, 60, 50)}

	types := suggestionTypes(CompletionSuggestions(palette))
	if types[SuggestionComplement] == 0 {
		t.Error("expected a complementary accent suggestion")
	}

	// A palette that already spans the complement should not get one.
	covered := []Color{colorFromHSL(0, 60, 50), colorFromHSL(170, 60, 50)}
	types = suggestionTypes(CompletionSuggestions(covered))
	if types[SuggestionComplement] != 0 {
		t.Error("complement already covered, no accent expected")
	}
}
