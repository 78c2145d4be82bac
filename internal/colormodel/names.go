package colormodel

import (
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

type namedColor struct {
	name string
	rgb  [3]uint8
	col  colorful.Color
}

// css4Names are CSS Color 4 keywords missing from the SVG 1.1 list in
// colornames.
var css4Names = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff},
}

// nameTable holds the CSS keywords in alphabetical order, which is also the
// tie-break order for both exact and nearest matches.
var nameTable, nameIndex = buildNameTable()

func buildNameTable() ([]namedColor, map[string]color.RGBA) {
	index := make(map[string]color.RGBA, len(colornames.Map)+len(css4Names))
	for name, c := range colornames.Map {
		index[name] = c
	}
	for name, c := range css4Names {
		index[name] = c
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make([]namedColor, 0, len(names))
	for _, name := range names {
		c := index[name]
		table = append(table, namedColor{
			name: name,
			rgb:  [3]uint8{c.R, c.G, c.B},
			col:  colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255},
		})
	}
	return table, index
}

// LookupName resolves a CSS color keyword, ignoring case.
func LookupName(name string) (Color, bool) {
	c, ok := nameIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return FromRGB255(c.R, c.G, c.B, 100), true
}

// NearestName returns the keyword whose 8-bit RGB equals c's, or failing that
// the keyword at the smallest CIE76 distance (Euclidean in CIELAB, D65).
func NearestName(c Color) NameMatch {
	rgb := c.RGB255()
	for _, nc := range nameTable {
		if nc.rgb == rgb {
			return NameMatch{Name: nc.name, Exact: true}
		}
	}

	target := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	best := nameTable[0]
	bestDist := target.DistanceLab(best.col)
	for _, nc := range nameTable[1:] {
		if d := target.DistanceLab(nc.col); d < bestDist {
			best, bestDist = nc, d
		}
	}
	return NameMatch{Name: best.name, Exact: false}
}
