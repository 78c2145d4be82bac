package colormodel

import (
	"fmt"
	"math"
	"strconv"
)

// FormatColor serializes c in format f. The alpha term is only written when
// opts.ShowAlpha is set and c is not opaque. Passing an unknown format is a
// programming error and panics.
func FormatColor(c Color, f Format, opts Options) string {
	withAlpha := opts.ShowAlpha && !c.Opaque()

	switch f {
	case FormatHex:
		rgb := c.RGB255()
		if withAlpha {
			return fmt.Sprintf("#%02x%02x%02x%02x", rgb[0], rgb[1], rgb[2], alphaByte(c.Alpha))
		}
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])

	case FormatRGB:
		rgb := c.RGB255()
		if withAlpha {
			return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb[0], rgb[1], rgb[2], alphaString(c.Alpha))
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2])

	case FormatHSL:
		hsl := c.HSL()
		h, s, l := roundHue(hsl.H), math.Round(hsl.S), math.Round(hsl.L)
		if withAlpha {
			return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, int(s), int(l), alphaString(c.Alpha))
		}
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, int(s), int(l))

	case FormatHWB:
		h, w, b := rgbToHWB(c.RGB().clamped())
		return fmt.Sprintf("hwb(%d %d%% %d%%%s)", roundHue(h), percent(w), percent(b), slashAlpha(c, withAlpha))

	case FormatCMYK:
		cy, m, y, k := rgbToCMYK(c.RGB().clamped())
		return fmt.Sprintf("device-cmyk(%d%% %d%% %d%% %d%%%s)",
			percent(cy), percent(m), percent(y), percent(k), slashAlpha(c, withAlpha))

	case FormatLCH:
		l, chroma, h := toLCH(c)
		if round2(h) >= 360 {
			h = 0
		}
		return fmt.Sprintf("lch(%s%% %s %s%s)", decimal(l, 2), decimal(chroma, 2), decimal(h, 2), slashAlpha(c, withAlpha))

	case FormatXYZ:
		return fmt.Sprintf("color(xyz %s %s %s)", decimal(c.X, 4), decimal(c.Y, 4), decimal(c.Z, 4))

	case FormatName:
		return NearestName(c).Name
	}

	panic(fmt.Sprintf("colormodel: unknown format %d", int(f)))
}

// Describe serializes c in every format.
func Describe(c Color, opts Options) Record {
	return Record{
		Hex:  FormatColor(c, FormatHex, opts),
		RGB:  FormatColor(c, FormatRGB, opts),
		HSL:  FormatColor(c, FormatHSL, opts),
		HWB:  FormatColor(c, FormatHWB, opts),
		CMYK: FormatColor(c, FormatCMYK, opts),
		LCH:  FormatColor(c, FormatLCH, opts),
		XYZ:  FormatColor(c, FormatXYZ, opts),
		Name: FormatColor(c, FormatName, opts),
	}
}

func alphaByte(alpha int) uint8 {
	return uint8(math.Round(float64(clampInt(alpha, 0, 100)) * 255 / 100))
}

func alphaString(alpha int) string {
	return strconv.FormatFloat(float64(clampInt(alpha, 0, 100))/100, 'f', -1, 64)
}

func slashAlpha(c Color, withAlpha bool) string {
	if !withAlpha {
		return ""
	}
	return " / " + alphaString(c.Alpha)
}

// roundHue rounds to whole degrees and folds 360 back to 0.
func roundHue(h float64) int {
	d := int(math.Round(h))
	if d >= 360 {
		d -= 360
	}
	return d
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// decimal prints v rounded to at most places fractional digits, without
// trailing zeros.
func decimal(v float64, places int) string {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
