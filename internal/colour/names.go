package colour

import "strings"

// shadeQualifierDelta is how far apart the channel averages of the query and
// its nearest dictionary entry must be before a Dark/Light prefix is added.
const shadeQualifierDelta = 40

// NearestName returns a human-readable name for a colour: the dictionary
// entry with the smallest redmean-weighted distance, prefixed with "Dark" or
// "Light" when the query is notably darker or lighter than the entry itself.
// It never fails; the worst case is the closest of the dictionary entries.
func NearestName(rgb RGB) string {
	nearest := namedColors[0]
	nearestDist := redmeanDistance(rgb, nearest.RGB)

	for _, entry := range namedColors[1:] {
		if d := redmeanDistance(rgb, entry.RGB); d < nearestDist {
			nearestDist = d
			nearest = entry
		}
	}

	return shadeQualifiedName(rgb, nearest)
}

// shadeQualifiedName prefixes the entry's name with "Dark" or "Light" when
// the query's channel average differs from the entry's own by more than
// shadeQualifierDelta in either direction.
func shadeQualifiedName(query RGB, entry NamedColor) string {
	diff := channelAverage(query) - channelAverage(entry.RGB)
	switch {
	case diff < -shadeQualifierDelta && !strings.HasPrefix(entry.Name, "Dark"):
		return "Dark " + entry.Name
	case diff > shadeQualifierDelta && !strings.HasPrefix(entry.Name, "Light"):
		return "Light " + entry.Name
	}
	return entry.Name
}

// channelAverage is a cheap lightness proxy: the mean of the three channels.
func channelAverage(rgb RGB) float64 {
	return (float64(rgb.R) + float64(rgb.G) + float64(rgb.B)) / 3.0
}
