package surface

import "sort"

// PointerSource distinguishes mouse from touch input. Both drive the same
// update path.
type PointerSource int

const (
	SourceMouse PointerSource = iota
	SourceTouch
)

// EventType is the kind of window-level event a host delivers.
type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	PointerLeave
	Resize
	Blur
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case PointerLeave:
		return "pointer-leave"
	case Resize:
		return "resize"
	case Blur:
		return "blur"
	}
	return "unknown"
}

// Point is a position in host coordinates.
type Point struct {
	X, Y float64
}

// Rect is a bounding box in host coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// Fraction maps p to [0,1] on both axes, clamping points outside r.
func (r Rect) Fraction(p Point) (fx, fy float64) {
	if r.Width > 0 {
		fx = clamp((p.X-r.Left)/r.Width, 0, 1)
	}
	if r.Height > 0 {
		fy = clamp((p.Y-r.Top)/r.Height, 0, 1)
	}
	return fx, fy
}

// Event is one input event. Handlers may call PreventDefault to tell the
// host not to apply its default action (page scroll for touch moves).
type Event struct {
	Type      EventType
	Source    PointerSource
	Pos       Point
	prevented bool
}

func (e *Event) PreventDefault() {
	e.prevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// Handler receives window events.
type Handler func(ev *Event)

// Window is the window-scoped listener registry shared by every drag surface.
// Listeners are held as Subscriptions and must be released by their owner.
type Window struct {
	handlers map[int]Handler
	next     int
}

func NewWindow() *Window {
	return &Window{handlers: make(map[int]Handler)}
}

// Listen registers h until the returned Subscription is released.
func (w *Window) Listen(h Handler) *Subscription {
	id := w.next
	w.next++
	w.handlers[id] = h
	return &Subscription{window: w, id: id}
}

// Dispatch delivers ev to the listeners registered when dispatch starts, in
// registration order. Listeners added during dispatch see the next event;
// listeners released during dispatch are skipped.
func (w *Window) Dispatch(ev *Event) {
	ids := make([]int, 0, len(w.handlers))
	for id := range w.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if h, ok := w.handlers[id]; ok {
			h(ev)
		}
	}
}

// Listeners returns the number of live subscriptions.
func (w *Window) Listeners() int {
	return len(w.handlers)
}

// Subscription is an acquired window listener.
type Subscription struct {
	window *Window
	id     int
}

// Release detaches the listener. It is safe to call more than once and on a
// nil Subscription.
func (s *Subscription) Release() {
	if s == nil || s.window == nil {
		return
	}
	delete(s.window.handlers, s.id)
	s.window = nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
