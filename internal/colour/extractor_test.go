package colour

import (
	"errors"
	"math"
	"testing"
)

func TestExtractColorsSolidImage(t *testing.T) {
	buf := rgbaBuffer(20, 20, 100, 150, 200, 255)

	result, err := ExtractColors(buf, 20, 20, ExtractOptions{ColorCount: 5})
	if err != nil {
		t.Fatalf("ExtractColors() error: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Fatalf("solid image should yield exactly one colour, got %d", len(result.Colors))
	}

	c := result.Colors[0]
	if c.RGB != (RGB{R: 100, G: 150, B: 200}) {
		t.Errorf("extracted %+v, want the source colour", c.RGB)
	}
	if math.Abs(c.Percentage-100) > 0.01 {
		t.Errorf("percentage = %v, want 100", c.Percentage)
	}
	if c.Hex != "#6496C8" {
		t.Errorf("hex = %s, want #6496C8", c.Hex)
	}
	if c.Name == "" {
		t.Error("extracted colour should carry a name")
	}
	if result.DominantColor != c {
		t.Error("dominant colour must be the first entry")
	}
	if result.ProcessingTime < 0 {
		t.Errorf("processing time = %v", result.ProcessingTime)
	}
}

func TestExtractColorsThreePrimaries(t *testing.T) {
	// 25 red, 25 green, 25 blue pixels.
	buf := make([]byte, 75*4)
	for i := 0; i < 75; i++ {
		switch {
		case i < 25:
			buf[i*4] = 255
		case i < 50:
			buf[i*4+1] = 255
		default:
			buf[i*4+2] = 255
		}
		buf[i*4+3] = 255
	}

	result, err := ExtractColors(buf, 75, 1, ExtractOptions{ColorCount: 3})
	if err != nil {
		t.Fatalf("ExtractColors() error: %v", err)
	}

	if len(result.Colors) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(result.Colors))
	}

	want := []RGB{{R: 255}, {G: 255}, {B: 255}}
	for _, target := range want {
		found := false
		for _, c := range result.Colors {
			if DeltaE(c.RGB, target) < 5 {
				found = true
				if math.Abs(c.Percentage-33.33) > 3 {
					t.Errorf("cluster %+v percentage = %v, want ~33.3", c.RGB, c.Percentage)
				}
			}
		}
		if !found {
			t.Errorf("no cluster near %+v in %+v", target, result.Colors)
		}
	}
}

func TestExtractColorsEmptyImage(t *testing.T) {
	_, err := ExtractColors(nil, 0, 0, ExtractOptions{ColorCount: 4})
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("zero-size buffer: error = %v, want ErrEmptyImage", err)
	}
}

func TestExtractColorsTransparentImage(t *testing.T) {
	buf := rgbaBuffer(8, 8, 50, 60, 70, 0)

	_, err := ExtractColors(buf, 8, 8, ExtractOptions{ColorCount: 4})
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("fully transparent image: error = %v, want ErrEmptyImage", err)
	}

	result, err := ExtractColors(buf, 8, 8, ExtractOptions{ColorCount: 4, IncludeTransparent: true})
	if err != nil {
		t.Fatalf("includeTransparent should succeed, got %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].RGB != (RGB{R: 50, G: 60, B: 70}) {
		t.Errorf("unexpected result %+v", result.Colors)
	}
}

func TestExtractColorsBoundedOutput(t *testing.T) {
	// A noisy but deterministic image.
	const w, h = 50, 50
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4] = uint8(i * 53 % 256)
		buf[i*4+1] = uint8(i * 97 % 256)
		buf[i*4+2] = uint8(i * 31 % 256)
		buf[i*4+3] = 255
	}

	for _, count := range []int{1, 2, 4, 8} {
		result, err := ExtractColors(buf, w, h, ExtractOptions{ColorCount: count})
		if err != nil {
			t.Fatalf("ExtractColors(count=%d) error: %v", count, err)
		}
		if len(result.Colors) > count {
			t.Errorf("count=%d: got %d colours", count, len(result.Colors))
		}
		for i := 0; i < len(result.Colors); i++ {
			for j := i + 1; j < len(result.Colors); j++ {
				d := DeltaE(result.Colors[i].RGB, result.Colors[j].RGB)
				if d < dedupeDeltaEThreshold {
					t.Errorf("count=%d: colours %d and %d only %v apart", count, i, j, d)
				}
			}
		}
	}
}

func TestExtractColorsOrderedByWeight(t *testing.T) {
	// 60 red pixels, 30 green, 10 blue.
	buf := make([]byte, 100*4)
	for i := 0; i < 100; i++ {
		switch {
		case i < 60:
			buf[i*4] = 255
		case i < 90:
			buf[i*4+1] = 255
		default:
			buf[i*4+2] = 255
		}
		buf[i*4+3] = 255
	}

	result, err := ExtractColors(buf, 100, 1, ExtractOptions{ColorCount: 3})
	if err != nil {
		t.Fatalf("ExtractColors() error: %v", err)
	}

	for i := 1; i < len(result.Colors); i++ {
		if result.Colors[i].Percentage > result.Colors[i-1].Percentage {
			t.Errorf("colours not in descending weight order: %+v", result.Colors)
		}
	}
	if result.Colors[0].RGB != (RGB{R: 255}) {
		t.Errorf("dominant colour = %+v, want red", result.Colors[0].RGB)
	}
}

func TestExtractColorsDefaultCount(t *testing.T) {
	buf := rgbaBuffer(4, 4, 10, 20, 30, 255)

	result, err := ExtractColors(buf, 4, 4, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractColors() error: %v", err)
	}
	if len(result.Colors) == 0 || len(result.Colors) > DefaultColorCount {
		t.Errorf("default count violated: %d colours", len(result.Colors))
	}
}
