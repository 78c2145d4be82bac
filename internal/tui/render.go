package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/surface"
)

// shades renders lightness on terminals without color.
const shades = " .:-=+*#%@"

var (
	checkerLight = colorful.Color{R: 0.8, G: 0.8, B: 0.8}
	checkerDark  = colorful.Color{R: 0.55, G: 0.55, B: 0.55}
)

// planeColor is the color under plane cell (i, j) of a w×h grid.
func planeColor(hue float64, i, j, w, h int) colorful.Color {
	s, l := surface.PlaneToSL(fraction(i, w)*100, fraction(j, h)*100)
	return toColorful(colormodel.FromHSL(colormodel.HSL{H: hue, S: s, L: l}, 100))
}

func renderPlane(hue float64, w, h, markX, markY int, profile termenv.Profile) []string {
	rows := make([]string, h)
	for j := 0; j < h; j++ {
		var b strings.Builder
		for i := 0; i < w; i++ {
			c := planeColor(hue, i, j, w, h)
			glyph := " "
			if i == markX && j == markY {
				glyph = "◎"
			}
			b.WriteString(cell(c, glyph, profile))
		}
		rows[j] = b.String()
	}
	return rows
}

func renderHueRamp(w, mark int, profile termenv.Profile) string {
	var b strings.Builder
	for i := 0; i < w; i++ {
		h := surface.RampToHue(fraction(i, w))
		c := toColorful(colormodel.FromHSL(colormodel.HSL{H: h, S: 100, L: 50}, 100))
		glyph := " "
		if i == mark {
			glyph = "┃"
		}
		b.WriteString(cell(c, glyph, profile))
	}
	return b.String()
}

// renderAlphaRamp composites rgb over a checkerboard at each ramp alpha.
func renderAlphaRamp(rgb [3]uint8, w, mark int, profile termenv.Profile) string {
	base := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}

	var b strings.Builder
	for i := 0; i < w; i++ {
		a := float64(surface.RampToAlpha(fraction(i, w))) / 100
		bg := checkerLight
		if i%2 == 1 {
			bg = checkerDark
		}
		glyph := " "
		if i == mark {
			glyph = "┃"
		}
		b.WriteString(cell(bg.BlendRgb(base, a), glyph, profile))
	}
	return b.String()
}

func cell(c colorful.Color, glyph string, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		if glyph != " " {
			return glyph
		}
		l, _, _ := c.Lab()
		idx := int(l * float64(len(shades)-1))
		return string(shades[clampInt(idx, 0, len(shades)-1)])
	}

	style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	if glyph != " " {
		style = style.Foreground(contrast(c))
	}
	return style.Render(glyph)
}

// contrast picks black or white, whichever reads better on c.
func contrast(c colorful.Color) lipgloss.Color {
	if l, _, _ := c.Lab(); l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

func toColorful(c colormodel.Color) colorful.Color {
	rgb := c.RGB()
	return colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped()
}

func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
