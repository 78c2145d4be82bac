package surface

// State is the drag state of one surface.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag is the pointer state machine of a single plane or ramp. The target's
// geometry is captured once at drag start; move and up listeners live on the
// Window only while dragging.
type Drag struct {
	window *Window
	update func(fx, fy float64)

	state State
	rect  Rect
	sub   *Subscription
}

// NewDrag creates an idle drag surface. update receives the pointer position
// as fractions of the captured rect, already clamped to [0,1].
func NewDrag(w *Window, update func(fx, fy float64)) *Drag {
	return &Drag{window: w, update: update}
}

func (d *Drag) State() State {
	return d.state
}

// Start moves Idle to Dragging: it captures rect, applies the value under the
// pointer immediately and acquires the window listener.
func (d *Drag) Start(rect Rect, ev *Event) {
	d.sub.Release()
	d.rect = rect
	d.state = Dragging
	d.apply(ev)
	d.sub = d.window.Listen(d.handle)
}

func (d *Drag) handle(ev *Event) {
	switch ev.Type {
	case PointerMove:
		d.apply(ev)
	case PointerUp, PointerLeave, Blur:
		d.End()
	}
}

func (d *Drag) apply(ev *Event) {
	if ev.Source == SourceTouch && ev.Type == PointerMove {
		ev.PreventDefault()
	}
	d.update(d.rect.Fraction(ev.Pos))
}

// End returns to Idle and releases the window listener. The last applied value
// stands.
func (d *Drag) End() {
	d.sub.Release()
	d.sub = nil
	d.state = Idle
}
