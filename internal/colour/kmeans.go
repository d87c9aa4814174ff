package colour

// kmeansIterations is the fixed refinement budget. There is no convergence
// check and no randomized restart: identical samples and seeds always yield
// identical clusters.
const kmeansIterations = 8

// refineClusters runs fixed-iteration k-means over the samples starting from
// the given seed centroids and returns the final clusters with their
// weights. Each iteration produces a fresh centroid snapshot rather than
// mutating in place; empty clusters keep their previous centroid instead of
// being discarded mid-loop.
func refineClusters(samples []RGB, seeds []RGB) []ColorCluster {
	if len(samples) == 0 || len(seeds) == 0 {
		return nil
	}

	centroids := make([]RGB, len(seeds))
	copy(centroids, seeds)

	for iter := 0; iter < kmeansIterations; iter++ {
		assignments := assignToNearest(samples, centroids)
		centroids = recomputeCentroids(samples, assignments, centroids)
	}

	// Final assignment pass builds the definitive membership lists.
	assignments := assignToNearest(samples, centroids)

	members := make([][]RGB, len(centroids))
	for i, a := range assignments {
		members[a] = append(members[a], samples[i])
	}

	total := float64(len(samples))
	clusters := make([]ColorCluster, len(centroids))
	for i := range centroids {
		clusters[i] = ColorCluster{
			Centroid: centroids[i],
			Members:  members[i],
			Weight:   float64(len(members[i])) / total,
		}
	}
	return clusters
}

// assignToNearest maps every sample to the index of its nearest centroid by
// plain Euclidean RGB distance. Ties go to the first centroid encountered.
func assignToNearest(samples []RGB, centroids []RGB) []int {
	assignments := make([]int, len(samples))
	for i, s := range samples {
		nearest := 0
		nearestDist := squaredDistance(s, centroids[0])
		for j := 1; j < len(centroids); j++ {
			if d := squaredDistance(s, centroids[j]); d < nearestDist {
				nearestDist = d
				nearest = j
			}
		}
		assignments[i] = nearest
	}
	return assignments
}

// recomputeCentroids returns a new centroid snapshot: the channel-wise mean
// of each cluster's members, or the previous position for empty clusters.
func recomputeCentroids(samples []RGB, assignments []int, previous []RGB) []RGB {
	sums := make([][3]float64, len(previous))
	counts := make([]int, len(previous))

	for i, s := range samples {
		a := assignments[i]
		sums[a][0] += float64(s.R)
		sums[a][1] += float64(s.G)
		sums[a][2] += float64(s.B)
		counts[a]++
	}

	next := make([]RGB, len(previous))
	for i := range previous {
		if counts[i] == 0 {
			next[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		next[i] = RGB{
			R: clampChannel(sums[i][0] / n),
			G: clampChannel(sums[i][1] / n),
			B: clampChannel(sums[i][2] / n),
		}
	}
	return next
}

// squaredDistance is the squared Euclidean distance in RGB space. The square
// root is skipped because only the ordering matters for assignment.
func squaredDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return dr*dr + dg*dg + db*db
}
