package colour

import (
	"time"
)

// DefaultColorCount is the palette size used when an ExtractOptions leaves
// ColorCount unset.
const DefaultColorCount = 6

// maxColorCount bounds the requested palette size.
const maxColorCount = 256

// ExtractOptions configures palette extraction.
type ExtractOptions struct {
	// ColorCount is the maximum number of colours to return. Non-positive
	// values fall back to DefaultColorCount; values above 256 are clamped.
	ColorCount int

	// IncludeTransparent keeps pixels with alpha below the visibility
	// threshold in the working sample set.
	IncludeTransparent bool
}

// ExtractColors derives a ranked palette from a flat RGBA byte buffer.
//
// The pipeline is: strided sampling with alpha filtering, median-cut
// partitioning to seed centroids, fixed-iteration k-means refinement,
// perceptual deduplication, then naming and conversion of each surviving
// cluster. The whole pipeline is deterministic and touches no state outside
// the call.
//
// Returns ErrEmptyImage when sampling yields zero usable pixels, including a
// fully transparent image when transparency is excluded.
func ExtractColors(buf []byte, width, height int, opts ExtractOptions) (*ExtractionResult, error) {
	start := time.Now()

	count := opts.ColorCount
	if count <= 0 {
		count = DefaultColorCount
	}
	if count > maxColorCount {
		count = maxColorCount
	}

	samples := SamplePixels(buf, width, height, opts.IncludeTransparent)
	if len(samples) == 0 {
		return nil, ErrEmptyImage
	}

	// Seed with roughly twice the requested palette size so refinement has
	// a richer starting point.
	seeds := medianCut(samples, count*2)
	clusters := refineClusters(samples, seeds)
	accepted := dedupeClusters(clusters, count)

	colors := make([]Color, len(accepted))
	for i, cluster := range accepted {
		c := NewColor(cluster.Centroid)
		c.Name = NearestName(cluster.Centroid)
		c.Percentage = cluster.Weight * 100
		colors[i] = c
	}

	return &ExtractionResult{
		Colors:         colors,
		DominantColor:  colors[0],
		ProcessingTime: float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}
