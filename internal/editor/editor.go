package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/leonardotrapani/hyprpick/internal/clipboard"
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
)

const DefaultCopiedReset = 2 * time.Second

// Field is the displayed state of one format field.
type Field struct {
	Format colormodel.Format
	Text   string
	Err    *colormodel.FormatError
	Approx bool // name field: nearest match, not exact
	Copied bool
}

// Change is emitted after a field edit is accepted.
type Change struct {
	Format colormodel.Format
	Value  string
	Color  colormodel.Color
}

type Options struct {
	ShowAlpha   bool
	CopiedReset time.Duration
}

// Editor keeps one text field per format consistent with a single canonical
// color. A focused field is never overwritten by updates from other fields.
type Editor struct {
	mu sync.Mutex

	color  colormodel.Color
	fields []Field
	focus  map[colormodel.Format]focusState
	opts   Options

	clip      clipboard.Writer
	timers    map[colormodel.Format]*time.Timer
	listeners []func(Change)
}

// focusState is what Revert restores.
type focusState struct {
	text  string
	color colormodel.Color
}

// New creates an editor seeded with initial. A nil clip disables copying.
func New(initial colormodel.Color, opts Options, clip clipboard.Writer) *Editor {
	if opts.CopiedReset <= 0 {
		opts.CopiedReset = DefaultCopiedReset
	}
	if clip == nil {
		clip = clipboard.Nop{}
	}

	e := &Editor{
		color:  initial,
		fields: make([]Field, len(colormodel.Formats)),
		focus:  make(map[colormodel.Format]focusState),
		opts:   opts,
		clip:   clip,
		timers: make(map[colormodel.Format]*time.Timer),
	}
	for _, f := range colormodel.Formats {
		e.fields[f].Format = f
		e.render(f)
	}
	return e
}

// Subscribe registers fn for accepted edits. Callbacks run synchronously after
// the edit, outside the editor lock.
func (e *Editor) Subscribe(fn func(Change)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Focus marks f as being edited and records its text and the color for Revert.
func (e *Editor) Focus(f colormodel.Format) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focusLocked(f)
}

func (e *Editor) focusLocked(f colormodel.Format) {
	if _, ok := e.focus[f]; !ok {
		e.focus[f] = focusState{text: e.fields[f].Text, color: e.color}
	}
}

// Blur ends editing of f. Its text is refreshed by the next broadcast.
func (e *Editor) Blur(f colormodel.Format) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.focus, f)
}

func (e *Editor) Focused(f colormodel.Format) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.focus[f]
	return ok
}

// Input handles one keystroke's worth of text in field f. When text parses,
// the canonical color is replaced and every other unfocused field is
// rewritten. When it does not, only f's text and error change, and the
// *colormodel.FormatError is returned.
func (e *Editor) Input(f colormodel.Format, text string) error {
	e.mu.Lock()

	e.focusLocked(f)
	e.fields[f].Text = text

	c, err := colormodel.Parse(text, f)
	if err != nil {
		var fe *colormodel.FormatError
		if !errors.As(err, &fe) {
			e.mu.Unlock()
			panic(fmt.Sprintf("editor: unexpected parse error type %T", err))
		}
		e.fields[f].Err = fe
		e.mu.Unlock()
		return fe
	}

	e.commit(c)
	if f == colormodel.FormatName {
		e.fields[f].Approx = false
	}
	change := Change{Format: f, Value: text, Color: c}
	listeners := e.listeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
	return nil
}

// Revert restores f's text and the color captured when f gained focus. The
// field stays focused.
func (e *Editor) Revert(f colormodel.Format) {
	e.mu.Lock()
	original, ok := e.focus[f]
	if !ok {
		e.mu.Unlock()
		return
	}
	e.fields[f].Text = original.text
	e.commit(original.color)
	if f == colormodel.FormatName {
		e.render(f)
	}
	change := Change{Format: f, Value: original.text, Color: original.color}
	listeners := e.listeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}

// SetColor applies a color that changed through another path, such as the
// picker surface. Focused fields keep their text; no change is emitted.
func (e *Editor) SetColor(c colormodel.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commit(c)
}

// SetShowAlpha re-renders unfocused fields with or without alpha terms.
func (e *Editor) SetShowAlpha(show bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.ShowAlpha = show
	e.broadcast()
}

// commit is the only writer of the canonical color. Every error is cleared:
// the edited field has re-validated and the others changed through it.
func (e *Editor) commit(c colormodel.Color) {
	e.color = c
	for i := range e.fields {
		e.fields[i].Err = nil
	}
	e.broadcast()
}

func (e *Editor) broadcast() {
	for _, f := range colormodel.Formats {
		if _, focused := e.focus[f]; focused {
			continue
		}
		e.render(f)
	}
}

func (e *Editor) render(f colormodel.Format) {
	field := &e.fields[f]
	if f == colormodel.FormatName {
		match := colormodel.NearestName(e.color)
		field.Text = match.Name
		field.Approx = !match.Exact
		return
	}
	field.Text = colormodel.FormatColor(e.color, f, colormodel.Options{ShowAlpha: e.opts.ShowAlpha})
}

func (e *Editor) Color() colormodel.Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.color
}

func (e *Editor) Field(f colormodel.Format) Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields[f]
}

// Fields returns a snapshot of every field in display order.
func (e *Editor) Fields() []Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Record returns the displayed text of every field.
func (e *Editor) Record() colormodel.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return colormodel.Record{
		Hex:  e.fields[colormodel.FormatHex].Text,
		RGB:  e.fields[colormodel.FormatRGB].Text,
		HSL:  e.fields[colormodel.FormatHSL].Text,
		HWB:  e.fields[colormodel.FormatHWB].Text,
		CMYK: e.fields[colormodel.FormatCMYK].Text,
		LCH:  e.fields[colormodel.FormatLCH].Text,
		XYZ:  e.fields[colormodel.FormatXYZ].Text,
		Name: e.fields[colormodel.FormatName].Text,
	}
}

// Copy writes f's text to the clipboard. On success the field's Copied flag is
// set and cleared again after the configured delay. A failed write leaves the
// flag alone and never touches the color.
func (e *Editor) Copy(ctx context.Context, f colormodel.Format) error {
	e.mu.Lock()
	text := e.fields[f].Text
	e.mu.Unlock()

	if err := e.clip.Write(ctx, text); err != nil {
		log.Printf("Editor: failed to copy %s value: %v", f, err)
		return fmt.Errorf("failed to copy %s: %w", f, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.fields[f].Copied = true
	if t, ok := e.timers[f]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(e.opts.CopiedReset, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.timers[f] != timer {
			return
		}
		e.fields[f].Copied = false
		delete(e.timers, f)
	})
	e.timers[f] = timer
	return nil
}

// Close stops pending copied-flag timers.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for f, t := range e.timers {
		t.Stop()
		delete(e.timers, f)
	}
}
