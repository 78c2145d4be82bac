package surface

import "math"

// PlaneToSL maps a plane position in percent to saturation and lightness.
// x is saturation; the top edge sits at lightness 100 - s/2 and the bottom
// edge at 0, with linear falloff in between.
func PlaneToSL(x, y float64) (s, l float64) {
	s = math.Round(clamp(x, 0, 100))
	y = clamp(y, 0, 100)

	top := 100 - s/2
	switch {
	case y <= 0:
		l = top
	case y >= 100:
		l = 0
	default:
		l = math.Round(top * (1 - y/100))
	}
	return s, l
}

// SLToPlane places the plane pointer for a saturation/lightness pair. It is
// not the exact inverse of PlaneToSL when l > 50: the pointer is pinned to the
// top edge and pulled left in proportion to how far l exceeds 50.
func SLToPlane(s, l float64) (x, y float64) {
	s = clamp(s, 0, 100)
	l = clamp(l, 0, 100)

	if l <= 50 {
		return s, 100 - 2*l
	}
	return s - s*(l-50)/50, 0
}

// RampToHue maps a ramp position in [0,1] to whole degrees in [0,359].
func RampToHue(pos float64) float64 {
	h := math.Round(clamp(pos, 0, 1) * 360)
	if h >= 360 {
		h = 359
	}
	return h
}

func HueToRamp(h float64) float64 {
	return clamp(h/360, 0, 1)
}

// RampToAlpha maps a ramp position in [0,1] to an alpha percentage.
func RampToAlpha(pos float64) int {
	return int(math.Round(clamp(pos, 0, 1) * 100))
}

func AlphaToRamp(alpha int) float64 {
	return clamp(float64(alpha)/100, 0, 1)
}
