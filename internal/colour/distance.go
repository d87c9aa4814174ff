package colour

import "math"

// D65 reference white used to normalize XYZ before the Lab transform.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// lab is a colour in CIE Lab space.
type lab struct {
	L, A, B float64
}

// DeltaE returns the approximate CIE76 perceptual distance between two
// colours: the Euclidean distance of their Lab representations. It is
// symmetric and exactly zero for identical inputs. Roughly, values under 2
// are imperceptible and values over 10 read as clearly different colours.
func DeltaE(a, b RGB) float64 {
	la := rgbToLab(a)
	lb := rgbToLab(b)

	dl := la.L - lb.L
	da := la.A - lb.A
	db := la.B - lb.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// rgbToLab converts sRGB to CIE Lab via linear RGB and XYZ.
func rgbToLab(rgb RGB) lab {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	// Linear sRGB to XYZ (D65).
	x := r*0.4124 + g*0.3576 + b*0.1805
	y := r*0.2126 + g*0.7152 + b*0.0722
	z := r*0.0193 + g*0.1192 + b*0.9505

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// srgbToLinear applies the sRGB gamma decoding piecewise function.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// labF is the CIE Lab nonlinearity.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component per WCAG.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). Meets WCAG AA for normal text at 4.5:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLight reports whether a colour reads as light, using the perceptual
// luma weighting at a 0.5 threshold. Light colours want dark ink on top.
func IsLight(rgb RGB) bool {
	luma := (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255.0
	return luma > 0.5
}

// redmeanDistance is a perceptually weighted RGB distance. The red and blue
// weights shift with the mean red level and green carries the heaviest
// weight, approximating human sensitivity without a full Lab conversion.
func redmeanDistance(a, b RGB) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2.0
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)

	wr := 2 + rMean/256.0
	wb := 2 + (255.0-rMean)/256.0

	return math.Sqrt(wr*dr*dr + 4*dg*dg + wb*db*db)
}

// HueDistance calculates the angular distance between two hues on the colour
// wheel. Returns a value between 0 and 180 degrees (shortest path around the
// wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
