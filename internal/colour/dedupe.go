package colour

import "sort"

const (
	// minClusterWeight is the fraction below which clusters are dropped
	// before deduplication (0.5% of sampled pixels).
	minClusterWeight = 0.005

	// dedupeDeltaEThreshold merges clusters whose centroids are closer than
	// this perceptual distance.
	dedupeDeltaEThreshold = 10.0
)

// dedupeClusters drops sub-threshold clusters, merges perceptual
// near-duplicates and caps the result to maxColors entries.
//
// Clusters are walked in descending weight order. A cluster whose centroid
// is within dedupeDeltaEThreshold of an already accepted centroid folds its
// weight into that entry; the first-accepted centroid stays as the
// representative colour. Dropped weight is not redistributed.
func dedupeClusters(clusters []ColorCluster, maxColors int) []ColorCluster {
	kept := make([]ColorCluster, 0, len(clusters))
	for _, c := range clusters {
		if c.Weight >= minClusterWeight {
			kept = append(kept, c)
		}
	}

	// A very fragmented sample set can leave every cluster under the
	// threshold; fall back to the heaviest one so extraction still returns
	// a dominant colour.
	if len(kept) == 0 && len(clusters) > 0 {
		heaviest := clusters[0]
		for _, c := range clusters[1:] {
			if c.Weight > heaviest.Weight {
				heaviest = c
			}
		}
		kept = append(kept, heaviest)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Weight > kept[j].Weight
	})

	accepted := make([]ColorCluster, 0, maxColors)
	for _, c := range kept {
		merged := false
		for i := range accepted {
			if DeltaE(c.Centroid, accepted[i].Centroid) < dedupeDeltaEThreshold {
				accepted[i].Weight += c.Weight
				accepted[i].Members = append(accepted[i].Members, c.Members...)
				merged = true
				break
			}
		}
		if !merged {
			accepted = append(accepted, c)
		}
	}

	// Merging can grow a later entry past an earlier one; restore the
	// descending weight order before capping.
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Weight > accepted[j].Weight
	})

	if maxColors > 0 && len(accepted) > maxColors {
		accepted = accepted[:maxColors]
	}
	return accepted
}
