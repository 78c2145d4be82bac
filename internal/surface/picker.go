package surface

import (
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
)

// Layout is the host geometry of a picker. Plane, Hue and Alpha lie inside
// Bounds; a pointer-down outside Bounds deactivates the picker.
type Layout struct {
	Bounds Rect
	Plane  Rect
	Hue    Rect
	Alpha  Rect
}

// Options control which format change notifications are written in.
type Options struct {
	Format    colormodel.Format
	ShowAlpha bool
}

// Change is emitted for every accepted canonical update.
type Change struct {
	Format colormodel.Format
	Value  string
	Color  colormodel.Color
}

// Picker is the interactive color surface: a saturation/lightness plane, a
// hue ramp and an alpha ramp. Hue, saturation and lightness are the authoring
// state of the surface; the RGB triple is a render cache rederived from the
// canonical color on every commit.
type Picker struct {
	window *Window
	layout Layout
	opts   Options

	color colormodel.Color
	hue   float64
	sat   float64
	light float64
	rgb   [3]uint8

	active bool

	plane     *Drag
	hueRamp   *Drag
	alphaRamp *Drag
	life      *Subscription

	listeners []func(Change)
}

// New creates an active picker bound to w. Close must be called to release
// its window listeners.
func New(w *Window, layout Layout, initial colormodel.Color, opts Options) *Picker {
	p := &Picker{
		window: w,
		layout: layout,
		opts:   opts,
		active: true,
	}
	p.plane = NewDrag(w, p.dragPlane)
	p.hueRamp = NewDrag(w, func(fx, _ float64) { p.SetHue(RampToHue(fx)) })
	p.alphaRamp = NewDrag(w, func(fx, _ float64) { p.SetAlpha(RampToAlpha(fx)) })
	p.life = w.Listen(p.handleWindow)

	p.absorb(initial)
	return p
}

// Subscribe registers fn for change notifications.
func (p *Picker) Subscribe(fn func(Change)) {
	p.listeners = append(p.listeners, fn)
}

func (p *Picker) handleWindow(ev *Event) {
	switch ev.Type {
	case PointerDown:
		if !p.layout.Bounds.Contains(ev.Pos) {
			p.Deactivate()
			return
		}
		p.active = true
		switch {
		case p.layout.Plane.Contains(ev.Pos):
			p.plane.Start(p.layout.Plane, ev)
		case p.layout.Hue.Contains(ev.Pos):
			p.hueRamp.Start(p.layout.Hue, ev)
		case p.layout.Alpha.Contains(ev.Pos) && p.opts.ShowAlpha:
			p.alphaRamp.Start(p.layout.Alpha, ev)
		}
	case Resize, Blur:
		p.Deactivate()
	}
}

func (p *Picker) dragPlane(fx, fy float64) {
	s, l := PlaneToSL(fx*100, fy*100)
	p.SetSaturationLightness(s, l)
}

// SetHue replaces the hue, keeping saturation and lightness.
func (p *Picker) SetHue(h float64) {
	p.hue = clamp(h, 0, 359)
	p.commitHSL()
}

// SetSaturationLightness replaces saturation and lightness, keeping hue.
func (p *Picker) SetSaturationLightness(s, l float64) {
	p.sat = clamp(s, 0, 100)
	p.light = clamp(l, 0, 100)
	p.commitHSL()
}

// SetAlpha changes alpha only. Hue, saturation, lightness and the RGB cache
// are untouched because the XYZ value does not change.
func (p *Picker) SetAlpha(alpha int) {
	p.commit(p.color.WithAlpha(alpha))
}

func (p *Picker) commitHSL() {
	c := colormodel.FromHSL(colormodel.HSL{H: p.hue, S: p.sat, L: p.light}, p.color.Alpha)
	p.commit(c)
}

// commit is the only writer of the canonical color.
func (p *Picker) commit(c colormodel.Color) {
	p.color = c
	p.rgb = c.RGB255()

	change := Change{
		Format: p.opts.Format,
		Value:  colormodel.FormatColor(c, p.opts.Format, colormodel.Options{ShowAlpha: p.opts.ShowAlpha}),
		Color:  c,
	}
	for _, fn := range p.listeners {
		fn(change)
	}
}

// SetColor accepts a color from another path, such as a text field. It
// rederives the surface state without emitting a change. Achromatic colors
// keep the current hue so the hue ramp does not jump.
func (p *Picker) SetColor(c colormodel.Color) {
	p.absorb(c)
}

func (p *Picker) absorb(c colormodel.Color) {
	hsl := c.HSL()
	if hsl.S > 0 {
		p.hue = hsl.H
	}
	p.sat = hsl.S
	p.light = hsl.L
	p.color = c
	p.rgb = c.RGB255()
}

// SetOptions changes the notification format and alpha visibility.
func (p *Picker) SetOptions(opts Options) {
	p.opts = opts
}

// SetLayout replaces the geometry used by future drags. A drag in progress
// keeps the rect it captured at start.
func (p *Picker) SetLayout(layout Layout) {
	p.layout = layout
}

// Deactivate closes the picker surface and ends any drag without rollback.
func (p *Picker) Deactivate() {
	p.active = false
	p.endDrags()
}

// Activate reopens a deactivated picker.
func (p *Picker) Activate() {
	p.active = true
}

func (p *Picker) endDrags() {
	p.plane.End()
	p.hueRamp.End()
	p.alphaRamp.End()
}

// Close releases every window listener held by the picker. It is safe to call
// more than once and is meant to be deferred by the owner.
func (p *Picker) Close() {
	p.endDrags()
	p.life.Release()
	p.life = nil
	p.active = false
}

func (p *Picker) Active() bool {
	return p.active
}

func (p *Picker) Color() colormodel.Color {
	return p.color
}

// RGB returns the render cache.
func (p *Picker) RGB() [3]uint8 {
	return p.rgb
}

func (p *Picker) Alpha() int {
	return p.color.Alpha
}

func (p *Picker) HSL() colormodel.HSL {
	return colormodel.HSL{H: p.hue, S: p.sat, L: p.light}
}

func (p *Picker) Layout() Layout {
	return p.layout
}

// Dragging reports whether any of the three surfaces is mid-drag.
func (p *Picker) Dragging() bool {
	return p.plane.State() == Dragging || p.hueRamp.State() == Dragging || p.alphaRamp.State() == Dragging
}

// States returns the drag state of the plane, hue ramp and alpha ramp.
func (p *Picker) States() (plane, hue, alpha State) {
	return p.plane.State(), p.hueRamp.State(), p.alphaRamp.State()
}

// PlanePointer returns the plane pointer position in percent.
func (p *Picker) PlanePointer() (x, y float64) {
	return SLToPlane(p.sat, p.light)
}

// HuePointer and AlphaPointer return ramp positions in [0,1].
func (p *Picker) HuePointer() float64 {
	return HueToRamp(p.hue)
}

func (p *Picker) AlphaPointer() float64 {
	return AlphaToRamp(p.color.Alpha)
}
