package tui

import (
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/surface"
)

// geometry places the picker in terminal cells. Rows are counted from the
// top of the view: title, blank, plane rows, blank, hue ramp, blank, alpha
// ramp and blank when alpha is shown, then one row per field.
type geometry struct {
	left      int
	planeTop  int
	planeW    int
	planeH    int
	hueRow    int
	alphaRow  int // -1 when alpha is hidden
	fieldsTop int
}

// rows below the plane: ramps, fields, blank and help line
const chromeRows = 17

func computeGeometry(width, height int, showAlpha bool) geometry {
	g := geometry{
		left:     2,
		planeTop: 2,
		planeW:   clampInt(width-4, 16, 72),
		planeH:   clampInt(height-chromeRows, 4, 16),
	}
	g.hueRow = g.planeTop + g.planeH + 1
	if showAlpha {
		g.alphaRow = g.hueRow + 2
		g.fieldsTop = g.alphaRow + 2
	} else {
		g.alphaRow = -1
		g.fieldsTop = g.hueRow + 2
	}
	return g
}

// layout maps the cell grid to surface rects. A rect spans from the first to
// the last cell so both end cells reach the extreme values.
func (g geometry) layout() surface.Layout {
	left := float64(g.left)
	span := float64(g.planeW - 1)

	l := surface.Layout{
		Plane: surface.Rect{Left: left, Top: float64(g.planeTop), Width: span, Height: float64(g.planeH - 1)},
		Hue:   surface.Rect{Left: left, Top: float64(g.hueRow), Width: span},
	}
	bottom := g.hueRow
	if g.alphaRow >= 0 {
		l.Alpha = surface.Rect{Left: left, Top: float64(g.alphaRow), Width: span}
		bottom = g.alphaRow
	}
	l.Bounds = surface.Rect{
		Left:   0,
		Top:    float64(g.planeTop),
		Width:  float64(g.left*2 + g.planeW - 1),
		Height: float64(bottom - g.planeTop),
	}
	return l
}

// fieldAt returns the field shown on row y.
func (g geometry) fieldAt(y int) (colormodel.Format, bool) {
	i := y - g.fieldsTop
	if i < 0 || i >= len(colormodel.Formats) {
		return 0, false
	}
	return colormodel.Formats[i], true
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
