package colour

import (
	"fmt"
	"strings"
)

// GradientType identifies a gradient construction style.
type GradientType string

const (
	GradientLinear  GradientType = "linear"
	GradientSmooth  GradientType = "smooth"
	GradientDuotone GradientType = "duotone"
	GradientRadial  GradientType = "radial"
	GradientConic   GradientType = "conic"
)

// GradientStop pairs a colour with its position along the gradient, 0-100.
type GradientStop struct {
	Color    Color   `json:"color"`
	Position float64 `json:"position"`
}

// Gradient is an ordered stop list plus an equivalent CSS expression.
type Gradient struct {
	Type  GradientType   `json:"type"`
	Name  string         `json:"name"`
	Stops []GradientStop `json:"stops"`
	CSS   string         `json:"css"`
}

// GradientSuggestions builds gradient variants from an ordered colour list:
// a full-palette linear gradient, a five-stop smooth blend between the first
// and last colours, a duotone between the most perceptually distant pair, a
// radial variant, and (for three or more colours) a conic variant. Fewer
// than two colours yield no gradients.
func GradientSuggestions(colors []Color) []Gradient {
	if len(colors) < 2 {
		return nil
	}

	gradients := []Gradient{
		linearGradient(colors),
		smoothGradient(colors[0], colors[len(colors)-1]),
		duotoneGradient(colors),
		radialGradient(colors),
	}
	if len(colors) >= 3 {
		gradients = append(gradients, conicGradient(colors))
	}
	return gradients
}

// evenStops spaces the colours evenly from 0 to 100.
func evenStops(colors []Color) []GradientStop {
	stops := make([]GradientStop, len(colors))
	span := 100.0 / float64(len(colors)-1)
	for i, c := range colors {
		stops[i] = GradientStop{Color: c, Position: float64(i) * span}
	}
	return stops
}

func linearGradient(colors []Color) Gradient {
	stops := evenStops(colors)
	return Gradient{
		Type:  GradientLinear,
		Name:  "Palette Sweep",
		Stops: stops,
		CSS:   fmt.Sprintf("linear-gradient(90deg, %s)", stopList(stops)),
	}
}

// smoothGradient interpolates five stops between two colours, rounding each
// intermediate channel to the nearest integer.
func smoothGradient(from, to Color) Gradient {
	const stopCount = 5
	stops := make([]GradientStop, stopCount)
	for i := 0; i < stopCount; i++ {
		t := float64(i) / float64(stopCount-1)
		stops[i] = GradientStop{
			Color:    NewColor(lerpRGB(from.RGB, to.RGB, t)),
			Position: t * 100,
		}
	}
	return Gradient{
		Type:  GradientSmooth,
		Name:  "Smooth Blend",
		Stops: stops,
		CSS:   fmt.Sprintf("linear-gradient(90deg, %s)", stopList(stops)),
	}
}

// duotoneGradient spans the pair of palette colours with the largest
// pairwise perceptual distance.
func duotoneGradient(colors []Color) Gradient {
	bestA, bestB := 0, 1
	bestDist := -1.0
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if d := DeltaE(colors[i].RGB, colors[j].RGB); d > bestDist {
				bestDist = d
				bestA, bestB = i, j
			}
		}
	}

	stops := []GradientStop{
		{Color: colors[bestA], Position: 0},
		{Color: colors[bestB], Position: 100},
	}
	return Gradient{
		Type:  GradientDuotone,
		Name:  "Duotone",
		Stops: stops,
		CSS:   fmt.Sprintf("linear-gradient(90deg, %s)", stopList(stops)),
	}
}

func radialGradient(colors []Color) Gradient {
	stops := evenStops(colors)
	return Gradient{
		Type:  GradientRadial,
		Name:  "Radial Sweep",
		Stops: stops,
		CSS:   fmt.Sprintf("radial-gradient(circle, %s)", stopList(stops)),
	}
}

func conicGradient(colors []Color) Gradient {
	stops := evenStops(colors)
	return Gradient{
		Type:  GradientConic,
		Name:  "Conic Sweep",
		Stops: stops,
		CSS:   fmt.Sprintf("conic-gradient(from 0deg, %s)", stopList(stops)),
	}
}

// lerpRGB linearly interpolates each channel between two colours.
func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: clampChannel(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampChannel(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampChannel(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// stopList renders gradient stops as a CSS colour-stop list.
func stopList(stops []GradientStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("%s %s", s.Color.Hex, formatPosition(s.Position))
	}
	return strings.Join(parts, ", ")
}

// formatPosition renders a stop position, trimming a trailing ".0".
func formatPosition(p float64) string {
	s := fmt.Sprintf("%.1f", p)
	s = strings.TrimSuffix(s, ".0")
	return s + "%"
}
