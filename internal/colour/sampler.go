package colour

import "math"

const (
	// maxSampleBudget caps how many pixels sampling may visit, independent
	// of image resolution. Keeps extraction cost bounded on large images.
	maxSampleBudget = 40000

	// alphaVisibleMin is the minimum alpha for a pixel to count as visible.
	alphaVisibleMin = 128

	bytesPerPixel = 4
)

// SamplePixels walks a flat RGBA byte buffer in equal strides on both axes
// and returns the visited colours. Pixels with alpha below alphaVisibleMin
// are skipped unless includeTransparent is set. The stride is derived from
// the total pixel count so that at most around maxSampleBudget pixels are
// visited regardless of resolution.
//
// An empty result is not an error here; extraction refuses to proceed on
// zero samples and reports ErrEmptyImage to its caller.
func SamplePixels(buf []byte, width, height int, includeTransparent bool) []RGB {
	if width <= 0 || height <= 0 || len(buf) < width*height*bytesPerPixel {
		return nil
	}

	totalPixels := width * height
	step := int(math.Floor(math.Sqrt(float64(totalPixels) / float64(maxSampleBudget))))
	if step < 1 {
		step = 1
	}

	samples := make([]RGB, 0, totalPixels/(step*step)+1)
	for y := 0; y < height; y += step {
		row := y * width
		for x := 0; x < width; x += step {
			off := (row + x) * bytesPerPixel
			if buf[off+3] < alphaVisibleMin && !includeTransparent {
				continue
			}
			samples = append(samples, RGB{R: buf[off], G: buf[off+1], B: buf[off+2]})
		}
	}

	return samples
}
