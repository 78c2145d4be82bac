package colormodel

import (
	"fmt"
	"strings"
)

// Format identifies one of the supported textual color syntaxes.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
	FormatHWB
	FormatCMYK
	FormatLCH
	FormatXYZ
	FormatName
)

// Formats lists every format in display order.
var Formats = []Format{
	FormatHex,
	FormatRGB,
	FormatHSL,
	FormatHWB,
	FormatCMYK,
	FormatLCH,
	FormatXYZ,
	FormatName,
}

var formatNames = map[Format]string{
	FormatHex:  "hex",
	FormatRGB:  "rgb",
	FormatHSL:  "hsl",
	FormatHWB:  "hwb",
	FormatCMYK: "cmyk",
	FormatLCH:  "lch",
	FormatXYZ:  "xyz",
	FormatName: "name",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// HasAlpha reports whether the format's grammar carries an alpha term.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatXYZ, FormatName:
		return false
	}
	return true
}

// ParseFormat resolves a format name such as "hex" or "cmyk".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (must be hex, rgb, hsl, hwb, cmyk, lch, xyz, or name)", name)
}

// Color is the canonical color value: CIE XYZ (D65, Y of white = 1) plus an
// alpha percentage in [0,100].
type Color struct {
	X, Y, Z float64
	Alpha   int
}

// RGB holds gamma-encoded sRGB channels in [0,1]. Values outside that range
// are possible for colors parsed from XYZ or LCH.
type RGB struct {
	R, G, B float64
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent.
type HSL struct {
	H, S, L float64
}

// NameMatch is the result of a nearest-name lookup.
type NameMatch struct {
	Name  string
	Exact bool
}

// Options control serialization.
type Options struct {
	ShowAlpha bool
}

// Record holds the serialization of one color in every format.
type Record struct {
	Hex  string
	RGB  string
	HSL  string
	HWB  string
	CMYK string
	LCH  string
	XYZ  string
	Name string
}

// Get returns the entry for f.
func (r Record) Get(f Format) string {
	switch f {
	case FormatHex:
		return r.Hex
	case FormatRGB:
		return r.RGB
	case FormatHSL:
		return r.HSL
	case FormatHWB:
		return r.HWB
	case FormatCMYK:
		return r.CMYK
	case FormatLCH:
		return r.LCH
	case FormatXYZ:
		return r.XYZ
	case FormatName:
		return r.Name
	}
	panic(fmt.Sprintf("colormodel: unknown format %d", int(f)))
}

// WithAlpha returns a copy of c with alpha clamped to [0,100].
func (c Color) WithAlpha(alpha int) Color {
	c.Alpha = clampInt(alpha, 0, 100)
	return c
}

// Opaque reports whether the alpha term would be omitted from output.
func (c Color) Opaque() bool {
	return c.Alpha >= 100
}

func (c Color) String() string {
	return FormatColor(c, FormatHex, Options{ShowAlpha: true})
}
