package colour

import "testing"

func TestMedianCutSeedCount(t *testing.T) {
	// A spread of colours along all channels.
	var samples []RGB
	for i := 0; i < 64; i++ {
		samples = append(samples, RGB{R: uint8(i * 4), G: uint8(255 - i*4), B: uint8(i * 2)})
	}

	seeds := medianCut(samples, 8)

	if len(seeds) != 8 {
		t.Errorf("expected 8 seeds from 64 spread samples, got %d", len(seeds))
	}
}

func TestMedianCutDegenerateInput(t *testing.T) {
	if seeds := medianCut(nil, 4); seeds != nil {
		t.Errorf("expected nil seeds for empty input, got %v", seeds)
	}
	if seeds := medianCut([]RGB{{R: 1, G: 2, B: 3}}, 0); seeds != nil {
		t.Errorf("expected nil seeds for zero target, got %v", seeds)
	}
}

func TestMedianCutSingleSample(t *testing.T) {
	seeds := medianCut([]RGB{{R: 10, G: 20, B: 30}}, 4)

	if len(seeds) != 1 {
		t.Fatalf("expected 1 seed, got %d", len(seeds))
	}
	if seeds[0] != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("seed = %+v, want the sample itself", seeds[0])
	}
}

func TestMedianCutSplitsWidestChannel(t *testing.T) {
	// Two tight groups separated only on the red channel.
	samples := []RGB{
		{R: 10, G: 100, B: 100}, {R: 12, G: 101, B: 99}, {R: 11, G: 99, B: 100},
		{R: 240, G: 100, B: 100}, {R: 242, G: 101, B: 99}, {R: 241, G: 99, B: 100},
	}

	seeds := medianCut(samples, 2)

	if len(seeds) != 2 {
		t.Fatalf("expected 2 seeds, got %d", len(seeds))
	}

	var low, high bool
	for _, s := range seeds {
		if s.R < 50 {
			low = true
		}
		if s.R > 200 {
			high = true
		}
	}
	if !low || !high {
		t.Errorf("seeds %v should straddle the red split", seeds)
	}
}

func TestMeanRGBRounding(t *testing.T) {
	got := meanRGB([]RGB{{R: 1, G: 0, B: 0}, {R: 2, G: 0, B: 0}})
	// 1.5 rounds to 2 (round half away from zero).
	if got.R != 2 {
		t.Errorf("meanRGB rounded to %d, want 2", got.R)
	}
}
