package colormodel

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const tok = `([^\s,/%()]+)`

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-f]+)$`)
	rgbPattern  = regexp.MustCompile(`^rgba?\(\s*` + tok + `\s*,\s*` + tok + `\s*,\s*` + tok + `\s*(?:,\s*` + tok + `\s*)?\)$`)
	hslPattern  = regexp.MustCompile(`^hsla?\(\s*` + tok + `\s*,\s*` + tok + `%\s*,\s*` + tok + `%\s*(?:,\s*` + tok + `\s*)?\)$`)
	hwbPattern  = regexp.MustCompile(`^hwb\(\s*` + tok + `\s+` + tok + `%\s+` + tok + `%\s*(?:/\s*` + tok + `\s*)?\)$`)
	cmykPattern = regexp.MustCompile(`^device-cmyk\(\s*` + tok + `%\s+` + tok + `%\s+` + tok + `%\s+` + tok + `%\s*(?:/\s*` + tok + `\s*)?\)$`)
	lchPattern  = regexp.MustCompile(`^lch\(\s*` + tok + `%\s+` + tok + `\s+` + tok + `\s*(?:/\s*` + tok + `\s*)?\)$`)
	xyzPattern  = regexp.MustCompile(`^color\(\s*([a-z0-9-]+)\s+` + tok + `\s+` + tok + `\s+` + tok + `\s*\)$`)
	namePattern = regexp.MustCompile(`^[a-z]+$`)

	intPattern    = regexp.MustCompile(`^[+-]?\d+$`)
	numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
)

// Parse reads text in format f. On failure the returned Color is the zero
// value and the error is a *FormatError; callers keep their previous color.
// Formats without alpha syntax, and alpha-capable input that omits alpha,
// yield an opaque color.
func Parse(text string, f Format) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return Color{}, syntaxError(f, text, "empty input")
	}

	var (
		c   Color
		err *FormatError
	)
	switch f {
	case FormatHex:
		c, err = parseHex(s)
	case FormatRGB:
		c, err = parseRGB(s)
	case FormatHSL:
		c, err = parseHSL(s)
	case FormatHWB:
		c, err = parseHWB(s)
	case FormatCMYK:
		c, err = parseCMYK(s)
	case FormatLCH:
		c, err = parseLCH(s)
	case FormatXYZ:
		c, err = parseXYZ(s)
	case FormatName:
		c, err = parseName(s)
	default:
		return Color{}, unsupportedError(f, text, "no parser for this format")
	}
	if err != nil {
		err.Input = text
		return Color{}, err
	}
	return c, nil
}

// Detect picks the format whose grammar text is written in, judging by its
// prefix only.
func Detect(text string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(s, "#"):
		return FormatHex, nil
	case strings.HasPrefix(s, "rgb"):
		return FormatRGB, nil
	case strings.HasPrefix(s, "hsl"):
		return FormatHSL, nil
	case strings.HasPrefix(s, "hwb"):
		return FormatHWB, nil
	case strings.HasPrefix(s, "device-cmyk"):
		return FormatCMYK, nil
	case strings.HasPrefix(s, "lch"):
		return FormatLCH, nil
	case strings.HasPrefix(s, "color("):
		return FormatXYZ, nil
	case namePattern.MatchString(s):
		return FormatName, nil
	}
	return 0, fmt.Errorf("cannot detect color format of %q", text)
}

// ParseAny detects the format of text and parses it.
func ParseAny(text string) (Color, Format, error) {
	f, err := Detect(text)
	if err != nil {
		return Color{}, 0, syntaxError(FormatName, text, err.Error())
	}
	c, err := Parse(text, f)
	return c, f, err
}

func parseHex(s string) (Color, *FormatError) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatHex, s, "expected # followed by hex digits")
	}
	digits := m[1]

	var r, g, b, a uint64
	a = 255
	switch len(digits) {
	case 3, 4:
		vals := make([]uint64, len(digits))
		for i := range digits {
			v, _ := strconv.ParseUint(digits[i:i+1], 16, 8)
			vals[i] = v * 17
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(vals) == 4 {
			a = vals[3]
		}
	case 6, 8:
		r, _ = strconv.ParseUint(digits[0:2], 16, 8)
		g, _ = strconv.ParseUint(digits[2:4], 16, 8)
		b, _ = strconv.ParseUint(digits[4:6], 16, 8)
		if len(digits) == 8 {
			a, _ = strconv.ParseUint(digits[6:8], 16, 8)
		}
	default:
		return Color{}, syntaxError(FormatHex, s, "expected 3, 4, 6 or 8 hex digits")
	}

	alpha := int(math.Round(float64(a) * 100 / 255))
	return FromRGB255(uint8(r), uint8(g), uint8(b), alpha), nil
}

func parseRGB(s string) (Color, *FormatError) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatRGB, s, "expected rgb(r, g, b) or rgba(r, g, b, a)")
	}

	var ch [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := parseInt(FormatRGB, name, m[i+1], 0, 255)
		if err != nil {
			return Color{}, err
		}
		ch[i] = uint8(v)
	}
	alpha, err := parseAlpha(FormatRGB, m[4])
	if err != nil {
		return Color{}, err
	}
	return FromRGB255(ch[0], ch[1], ch[2], alpha), nil
}

func parseHSL(s string) (Color, *FormatError) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatHSL, s, "expected hsl(h, s%, l%) or hsla(h, s%, l%, a)")
	}

	h, err := parseInt(FormatHSL, "hue", m[1], 0, 360)
	if err != nil {
		return Color{}, err
	}
	sat, err := parseInt(FormatHSL, "saturation", m[2], 0, 100)
	if err != nil {
		return Color{}, err
	}
	l, err := parseInt(FormatHSL, "lightness", m[3], 0, 100)
	if err != nil {
		return Color{}, err
	}
	alpha, err := parseAlpha(FormatHSL, m[4])
	if err != nil {
		return Color{}, err
	}
	return FromHSL(HSL{H: float64(h), S: float64(sat), L: float64(l)}, alpha), nil
}

func parseHWB(s string) (Color, *FormatError) {
	m := hwbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatHWB, s, "expected hwb(h w% b%) with optional / a")
	}

	h, err := parseNumber(FormatHWB, "hue", m[1], 0, 360)
	if err != nil {
		return Color{}, err
	}
	w, err := parseNumber(FormatHWB, "whiteness", m[2], 0, 100)
	if err != nil {
		return Color{}, err
	}
	b, err := parseNumber(FormatHWB, "blackness", m[3], 0, 100)
	if err != nil {
		return Color{}, err
	}
	alpha, err := parseAlpha(FormatHWB, m[4])
	if err != nil {
		return Color{}, err
	}
	return FromRGB(hwbToRGB(h, w/100, b/100), alpha), nil
}

func parseCMYK(s string) (Color, *FormatError) {
	m := cmykPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatCMYK, s, "expected device-cmyk(c% m% y% k%) with optional / a")
	}

	var v [4]float64
	for i, name := range []string{"cyan", "magenta", "yellow", "black"} {
		n, err := parseNumber(FormatCMYK, name, m[i+1], 0, 100)
		if err != nil {
			return Color{}, err
		}
		v[i] = n / 100
	}
	alpha, err := parseAlpha(FormatCMYK, m[5])
	if err != nil {
		return Color{}, err
	}
	return FromRGB(cmykToRGB(v[0], v[1], v[2], v[3]), alpha), nil
}

func parseLCH(s string) (Color, *FormatError) {
	m := lchPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatLCH, s, "expected lch(l% c h) with optional / a")
	}

	// lightness is unbounded so out-of-gamut colors written by FormatColor
	// parse back to the same value
	l, err := parseNumber(FormatLCH, "lightness", m[1], math.Inf(-1), math.Inf(1))
	if err != nil {
		return Color{}, err
	}
	chroma, err := parseNumber(FormatLCH, "chroma", m[2], 0, math.Inf(1))
	if err != nil {
		return Color{}, err
	}
	h, err := parseNumber(FormatLCH, "hue", m[3], 0, 360)
	if err != nil {
		return Color{}, err
	}
	alpha, err := parseAlpha(FormatLCH, m[4])
	if err != nil {
		return Color{}, err
	}
	return fromLCH(l, chroma, h, alpha), nil
}

func parseXYZ(s string) (Color, *FormatError) {
	m := xyzPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, syntaxError(FormatXYZ, s, "expected color(xyz x y z)")
	}
	if space := m[1]; space != "xyz" && space != "xyz-d65" {
		return Color{}, unsupportedError(FormatXYZ, s, fmt.Sprintf("color space %q", space))
	}

	var v [3]float64
	for i, name := range []string{"x", "y", "z"} {
		n, err := parseNumber(FormatXYZ, name, m[i+2], math.Inf(-1), math.Inf(1))
		if err != nil {
			return Color{}, err
		}
		v[i] = n
	}
	return FromXyz(v[0], v[1], v[2]), nil
}

func parseName(s string) (Color, *FormatError) {
	if !namePattern.MatchString(s) {
		return Color{}, syntaxError(FormatName, s, "expected a color keyword")
	}
	c, ok := LookupName(s)
	if !ok {
		return Color{}, unsupportedError(FormatName, s, fmt.Sprintf("unknown color name %q", s))
	}
	return c, nil
}

func parseInt(f Format, name, s string, lo, hi int) (int, *FormatError) {
	if !intPattern.MatchString(s) {
		return 0, syntaxError(f, s, fmt.Sprintf("%s must be an integer", name))
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		return 0, rangeError(f, s, fmt.Sprintf("%s must be between %d and %d", name, lo, hi))
	}
	return v, nil
}

func parseNumber(f Format, name, s string, lo, hi float64) (float64, *FormatError) {
	if !numberPattern.MatchString(s) {
		return 0, syntaxError(f, s, fmt.Sprintf("%s must be a number", name))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || v < lo || v > hi {
		if math.IsInf(lo, -1) && math.IsInf(hi, 1) {
			return 0, rangeError(f, s, fmt.Sprintf("%s must be a finite number", name))
		}
		if math.IsInf(hi, 1) {
			return 0, rangeError(f, s, fmt.Sprintf("%s must be at least %g", name, lo))
		}
		return 0, rangeError(f, s, fmt.Sprintf("%s must be between %g and %g", name, lo, hi))
	}
	return v, nil
}

// parseAlpha reads an optional 0-1 alpha term and returns it as a percentage.
func parseAlpha(f Format, s string) (int, *FormatError) {
	if s == "" {
		return 100, nil
	}
	v, err := parseNumber(f, "alpha", s, 0, 1)
	if err != nil {
		return 0, err
	}
	return int(math.Round(v * 100)), nil
}
