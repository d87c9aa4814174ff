package colour

import "math"

// BestMatchScore scores how well palette a fits into palette b, from 0 (no
// resemblance) to 100 (every colour has an exact match).
//
// For each colour in a it finds the single closest colour in b by Delta-E,
// converts that distance to max(0, 100-distance), and averages the scores
// across a. The comparison is asymmetric by construction: scoring a against
// b answers "how well is a represented within b", which is generally not the
// same as the reverse. Either list being empty scores 0.
func BestMatchScore(a, b []Color) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var total float64
	for _, ca := range a {
		best := math.MaxFloat64
		for _, cb := range b {
			if d := DeltaE(ca.RGB, cb.RGB); d < best {
				best = d
			}
		}
		total += math.Max(0, 100-best)
	}
	return total / float64(len(a))
}
