package colour

import (
	"math"
	"testing"
)

func TestBestMatchScoreIdenticalPalettes(t *testing.T) {
	palette := paletteOf("#FF0000", "#00FF00", "#0000FF")

	if got := BestMatchScore(palette, palette); got != 100 {
		t.Errorf("identical palettes score %v, want 100", got)
	}
}

func TestBestMatchScoreEmptyInput(t *testing.T) {
	palette := paletteOf("#FF0000")

	if got := BestMatchScore(nil, palette); got != 0 {
		t.Errorf("empty first list scores %v, want 0", got)
	}
	if got := BestMatchScore(palette, nil); got != 0 {
		t.Errorf("empty second list scores %v, want 0", got)
	}
}

func TestBestMatchScoreRange(t *testing.T) {
	a := paletteOf("#FF0000", "#123456")
	b := paletteOf("#00FF00", "#654321")

	got := BestMatchScore(a, b)
	if got < 0 || got > 100 {
		t.Errorf("score %v outside [0, 100]", got)
	}
}

// Scoring a against b answers "how well is a represented within b"; the
// reverse direction is a different question with a different answer.
func TestBestMatchScoreAsymmetry(t *testing.T) {
	small := paletteOf("#FF0000")
	large := paletteOf("#FF0000", "#00FF00", "#0000FF")

	forward := BestMatchScore(small, large)
	backward := BestMatchScore(large, small)

	if forward != 100 {
		t.Errorf("small into large = %v, want 100 (exact match exists)", forward)
	}
	if backward >= forward {
		t.Errorf("expected asymmetry: backward %v should be below forward %v", backward, forward)
	}
}

func TestBestMatchScoreDistantColours(t *testing.T) {
	a := paletteOf("#000000")
	b := paletteOf("#FFFFFF")

	got := BestMatchScore(a, b)
	if got != 0 {
		t.Errorf("black vs white score %v, want 0 (distance exceeds 100)", got)
	}
	if math.IsNaN(got) {
		t.Error("score must not be NaN")
	}
}
