package colour

import (
	"math"
	"sort"
)

// medianCut recursively bisects the sample set along its widest channel and
// returns the centroid of each leaf bucket. The centroids seed k-means
// refinement. targetBuckets is rounded up to the nearest power of two by the
// depth budget; fewer buckets come back when a branch runs out of members.
func medianCut(samples []RGB, targetBuckets int) []RGB {
	if len(samples) == 0 || targetBuckets < 1 {
		return nil
	}

	depth := int(math.Ceil(math.Log2(float64(targetBuckets))))
	buckets := splitBucket(samples, depth)

	centroids := make([]RGB, len(buckets))
	for i, b := range buckets {
		centroids[i] = meanRGB(b)
	}
	return centroids
}

// splitBucket bisects a colour set at the median of its widest channel,
// recursing until the depth budget is spent or the set cannot be split.
func splitBucket(colors []RGB, depth int) [][]RGB {
	if depth <= 0 || len(colors) < 2 {
		return [][]RGB{colors}
	}

	channel := widestChannel(colors)

	sorted := make([]RGB, len(colors))
	copy(sorted, colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return channelValue(sorted[i], channel) < channelValue(sorted[j], channel)
	})

	mid := len(sorted) / 2
	result := splitBucket(sorted[:mid], depth-1)
	return append(result, splitBucket(sorted[mid:], depth-1)...)
}

// widestChannel returns the index (0=R, 1=G, 2=B) of the channel with the
// largest value range across the set.
func widestChannel(colors []RGB) int {
	var minC, maxC [3]uint8
	minC = [3]uint8{255, 255, 255}

	for _, c := range colors {
		for ch, v := range [3]uint8{c.R, c.G, c.B} {
			if v < minC[ch] {
				minC[ch] = v
			}
			if v > maxC[ch] {
				maxC[ch] = v
			}
		}
	}

	widest := 0
	widestRange := -1
	for ch := 0; ch < 3; ch++ {
		r := int(maxC[ch]) - int(minC[ch])
		if r > widestRange {
			widestRange = r
			widest = ch
		}
	}
	return widest
}

func channelValue(c RGB, channel int) uint8 {
	switch channel {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// meanRGB returns the channel-wise arithmetic mean of a colour set, rounded
// to the nearest integer.
func meanRGB(colors []RGB) RGB {
	if len(colors) == 0 {
		return RGB{}
	}

	var sumR, sumG, sumB float64
	for _, c := range colors {
		sumR += float64(c.R)
		sumG += float64(c.G)
		sumB += float64(c.B)
	}

	n := float64(len(colors))
	return RGB{
		R: clampChannel(sumR / n),
		G: clampChannel(sumG / n),
		B: clampChannel(sumB / n),
	}
}
