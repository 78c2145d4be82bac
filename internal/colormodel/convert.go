package colormodel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ToXyz returns the hub representation of c.
func ToXyz(c Color) (x, y, z float64) {
	return c.X, c.Y, c.Z
}

// FromXyz builds an opaque canonical color from XYZ tristimulus values.
func FromXyz(x, y, z float64) Color {
	return Color{X: x, Y: y, Z: z, Alpha: 100}
}

// FromRGB converts gamma-encoded sRGB channels to the canonical value.
func FromRGB(rgb RGB, alpha int) Color {
	x, y, z := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Xyz()
	return Color{X: x, Y: y, Z: z, Alpha: clampInt(alpha, 0, 100)}
}

// FromRGB255 converts 8-bit sRGB channels to the canonical value.
func FromRGB255(r, g, b uint8, alpha int) Color {
	return FromRGB(RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, alpha)
}

// FromHSL converts HSL (degrees, percent, percent) to the canonical value.
func FromHSL(hsl HSL, alpha int) Color {
	return FromRGB(hslToRGB(hsl.H, hsl.S/100, hsl.L/100), alpha)
}

// RGB returns the unclamped gamma-encoded sRGB channels of c. Channels are
// snapped to 1e-9 so that matrix round-off does not turn grays chromatic.
func (c Color) RGB() RGB {
	col := colorful.Xyz(c.X, c.Y, c.Z)
	return RGB{R: snap(col.R), G: snap(col.G), B: snap(col.B)}
}

// RGB255 returns the 8-bit sRGB channels of c, clamped to the sRGB gamut.
func (c Color) RGB255() [3]uint8 {
	rgb := c.RGB().clamped()
	return [3]uint8{to255(rgb.R), to255(rgb.G), to255(rgb.B)}
}

// HSL returns the hue, saturation and lightness of c without rounding.
// Achromatic colors report hue 0.
func (c Color) HSL() HSL {
	rgb := c.RGB().clamped()
	return rgbToHSL(rgb)
}

func (rgb RGB) clamped() RGB {
	return RGB{R: clamp01(rgb.R), G: clamp01(rgb.G), B: clamp01(rgb.B)}
}

func rgbToHSL(rgb RGB) HSL {
	hi := math.Max(rgb.R, math.Max(rgb.G, rgb.B))
	lo := math.Min(rgb.R, math.Min(rgb.G, rgb.B))
	l := (hi + lo) / 2
	d := hi - lo
	if d == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	s := d / (1 - math.Abs(2*l-1))
	return HSL{H: hueOf(rgb, hi, d), S: s * 100, L: l * 100}
}

// hueOf returns the hue angle shared by HSL and HWB.
func hueOf(rgb RGB, hi, d float64) float64 {
	var h float64
	switch hi {
	case rgb.R:
		h = math.Mod((rgb.G-rgb.B)/d, 6)
	case rgb.G:
		h = (rgb.B-rgb.R)/d + 2
	default:
		h = (rgb.R-rgb.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

// hslToRGB takes hue in degrees and s, l in [0,1].
func hslToRGB(h, s, l float64) RGB {
	h = normalizeHue(h) / 360
	if s == 0 {
		return RGB{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueToChannel(p, q, h+1.0/3),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// rgbToHWB returns hue in degrees and whiteness/blackness in [0,1].
func rgbToHWB(rgb RGB) (h, w, b float64) {
	hi := math.Max(rgb.R, math.Max(rgb.G, rgb.B))
	lo := math.Min(rgb.R, math.Min(rgb.G, rgb.B))
	if d := hi - lo; d > 0 {
		h = hueOf(rgb, hi, d)
	}
	return h, lo, 1 - hi
}

func hwbToRGB(h, w, b float64) RGB {
	if sum := w + b; sum >= 1 {
		gray := w / sum
		return RGB{R: gray, G: gray, B: gray}
	}
	pure := hslToRGB(h, 1, 0.5)
	scale := 1 - w - b
	return RGB{
		R: pure.R*scale + w,
		G: pure.G*scale + w,
		B: pure.B*scale + w,
	}
}

// rgbToCMYK uses the naive subtractive formula with black extraction.
func rgbToCMYK(rgb RGB) (c, m, y, k float64) {
	hi := math.Max(rgb.R, math.Max(rgb.G, rgb.B))
	k = 1 - hi
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - rgb.R - k) / (1 - k)
	m = (1 - rgb.G - k) / (1 - k)
	y = (1 - rgb.B - k) / (1 - k)
	return c, m, y, k
}

func cmykToRGB(c, m, y, k float64) RGB {
	return RGB{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
	}
}

// lchChromaEpsilon is the chroma below which a color is treated as achromatic.
const lchChromaEpsilon = 0.05

// toLCH returns CSS-scaled lightness [0,100], chroma and hue in degrees,
// computed through CIELAB with the D65 white.
func toLCH(c Color) (l, chroma, h float64) {
	L, a, b := colorful.XyzToLab(c.X, c.Y, c.Z)
	l, a, b = L*100, a*100, b*100
	chroma = math.Hypot(a, b)
	if chroma < lchChromaEpsilon {
		return l, 0, 0
	}
	h = math.Atan2(b, a) * 180 / math.Pi
	return l, chroma, normalizeHue(h)
}

func fromLCH(l, chroma, h float64, alpha int) Color {
	rad := normalizeHue(h) * math.Pi / 180
	a := chroma * math.Cos(rad)
	b := chroma * math.Sin(rad)
	x, y, z := colorful.LabToXyz(l/100, a/100, b/100)
	return Color{X: x, Y: y, Z: z, Alpha: clampInt(alpha, 0, 100)}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func to255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func snap(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
