package colour

import "testing"

// rgbaBuffer builds a flat RGBA buffer of width*height copies of one pixel.
func rgbaBuffer(width, height int, r, g, b, a uint8) []byte {
	buf := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		buf[i*4] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = a
	}
	return buf
}

func TestSamplePixelsSmallImage(t *testing.T) {
	buf := rgbaBuffer(10, 10, 200, 100, 50, 255)

	samples := SamplePixels(buf, 10, 10, false)

	if len(samples) != 100 {
		t.Fatalf("expected all 100 pixels sampled, got %d", len(samples))
	}
	for _, s := range samples {
		if s != (RGB{R: 200, G: 100, B: 50}) {
			t.Fatalf("unexpected sample %+v", s)
		}
	}
}

func TestSamplePixelsAlphaPolicy(t *testing.T) {
	// Half the pixels fully transparent, half opaque.
	buf := rgbaBuffer(10, 10, 10, 20, 30, 255)
	for i := 0; i < 50; i++ {
		buf[i*4+3] = 0
	}

	visible := SamplePixels(buf, 10, 10, false)
	if len(visible) != 50 {
		t.Errorf("alpha filtering kept %d pixels, want 50", len(visible))
	}

	all := SamplePixels(buf, 10, 10, true)
	if len(all) != 100 {
		t.Errorf("includeTransparent kept %d pixels, want 100", len(all))
	}
}

func TestSamplePixelsAlphaThreshold(t *testing.T) {
	// Alpha 127 is invisible, 128 is visible.
	buf := rgbaBuffer(2, 1, 1, 2, 3, 127)
	buf[7] = 128

	samples := SamplePixels(buf, 2, 1, false)
	if len(samples) != 1 {
		t.Fatalf("expected exactly the alpha=128 pixel, got %d samples", len(samples))
	}
}

func TestSamplePixelsDegenerateInput(t *testing.T) {
	tests := []struct {
		name          string
		buf           []byte
		width, height int
	}{
		{name: "nil buffer", buf: nil, width: 0, height: 0},
		{name: "zero dimensions", buf: []byte{1, 2, 3, 255}, width: 0, height: 1},
		{name: "short buffer", buf: []byte{1, 2, 3}, width: 1, height: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SamplePixels(tt.buf, tt.width, tt.height, true); len(got) != 0 {
				t.Errorf("expected no samples, got %d", len(got))
			}
		})
	}
}

func TestSamplePixelsBoundedBudget(t *testing.T) {
	// 400x400 = 160000 pixels: stride 2 on both axes visits 40000.
	buf := rgbaBuffer(400, 400, 9, 9, 9, 255)

	samples := SamplePixels(buf, 400, 400, false)

	if len(samples) > maxSampleBudget {
		t.Errorf("sampled %d pixels, budget is %d", len(samples), maxSampleBudget)
	}
	if len(samples) < maxSampleBudget/2 {
		t.Errorf("sampled only %d pixels, expected close to the budget", len(samples))
	}
}
