package colour

import (
	"math"
	"strings"
)

// clampChannel rounds a floating point channel value to the nearest integer
// and clamps it to the 8-bit range.
func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// normalizeHue wraps a hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clampPercent clamps a percentage value into [0, 100].
func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// RGBToHex renders an RGB colour as "#RRGGBB" with uppercase digits.
func RGBToHex(rgb RGB) string {
	return rgb.Hex()
}

// HexToRGB parses a hex colour string. The leading "#" is optional; exactly
// six case-insensitive hex digits are required. Malformed input returns an
// InvalidColorFormatError naming the offending string.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, &InvalidColorFormatError{Input: hex}
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, &InvalidColorFormatError{Input: hex}
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// hexDigit decodes a single hex character.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// RGBToHSL converts an RGB colour to HSL. Grayscale input (all channels
// equal) maps to hue 0 by convention.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic: hue and saturation are zero.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: normalizeHue(h), S: s * 100, L: l * 100}
}

// HSLToRGB converts an HSL colour to RGB. Together with RGBToHSL it forms a
// near-inverse pair: a round trip stays within ±3 per channel due to integer
// rounding.
func HSLToRGB(hsl HSL) RGB {
	h := normalizeHue(hsl.H)
	s := clampPercent(hsl.S) / 100.0
	l := clampPercent(hsl.L) / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clampChannel(hueToChannel(p, q, h+120) * 255),
		G: clampChannel(hueToChannel(p, q, h) * 255),
		B: clampChannel(hueToChannel(p, q, h-120) * 255),
	}
}

// hueToChannel is the piecewise helper for HSL to RGB conversion.
// t is an angle in degrees.
func hueToChannel(p, q, t float64) float64 {
	t = normalizeHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
