package editor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/leonardotrapani/hyprpick/internal/colormodel"
)

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (f *fakeClipboard) Write(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func newTestEditor(t *testing.T, hex string, opts Options) *Editor {
	t.Helper()
	c, err := colormodel.Parse(hex, colormodel.FormatHex)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", hex, err)
	}
	e := New(c, opts, nil)
	t.Cleanup(e.Close)
	return e
}

func countErrors(e *Editor) int {
	n := 0
	for _, f := range e.Fields() {
		if f.Err != nil {
			n++
		}
	}
	return n
}

func TestHexInputUpdatesOtherFields(t *testing.T) {
	e := newTestEditor(t, "#000000", Options{ShowAlpha: true})

	if err := e.Input(colormodel.FormatHex, "#0f85fa"); err != nil {
		t.Fatalf("Input failed: %v", err)
	}

	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(15, 133, 250)" {
		t.Errorf("rgb field = %q", got)
	}
	if got := e.Field(colormodel.FormatHSL).Text; got != "hsl(210, 96%, 52%)" {
		t.Errorf("hsl field = %q", got)
	}
	name := e.Field(colormodel.FormatName)
	if !name.Approx {
		t.Errorf("name field %q should be marked approx", name.Text)
	}
}

func TestRGBInputExactName(t *testing.T) {
	e := newTestEditor(t, "#000000", Options{})

	if err := e.Input(colormodel.FormatRGB, "rgb(255,0,0)"); err != nil {
		t.Fatalf("Input failed: %v", err)
	}

	if got := e.Field(colormodel.FormatHex).Text; got != "#ff0000" {
		t.Errorf("hex field = %q, want #ff0000", got)
	}
	name := e.Field(colormodel.FormatName)
	if name.Text != "red" || name.Approx {
		t.Errorf("name field = %+v, want exact red", name)
	}
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(255,0,0)" {
		t.Errorf("edited field should keep the typed text, got %q", got)
	}
}

func TestInvalidInputIsAtomic(t *testing.T) {
	e := newTestEditor(t, "#ff0000", Options{})
	before := e.Record()
	color := e.Color()

	err := e.Input(colormodel.FormatRGB, "rgb(999,0,0)")
	if !errors.Is(err, colormodel.ErrRange) {
		t.Fatalf("Input error = %v, want range error", err)
	}

	if e.Color() != color {
		t.Error("canonical color changed after a failed parse")
	}
	after := e.Record()
	for _, f := range colormodel.Formats {
		if f == colormodel.FormatRGB {
			continue
		}
		if before.Get(f) != after.Get(f) {
			t.Errorf("%s field changed: %q -> %q", f, before.Get(f), after.Get(f))
		}
	}
	if got := e.Field(colormodel.FormatRGB); got.Err == nil || got.Text != "rgb(999,0,0)" {
		t.Errorf("rgb field = %+v, want typed text with error", got)
	}
	if n := countErrors(e); n != 1 {
		t.Errorf("errors = %d, want exactly 1", n)
	}
}

func TestMalformedInputsSetOneError(t *testing.T) {
	inputs := map[colormodel.Format][]string{
		colormodel.FormatHex:  {"#", "#12", "fff", "#ggg"},
		colormodel.FormatRGB:  {"rgb(", "rgb(1,2,3", "rgb(300,0,0)"},
		colormodel.FormatHSL:  {"hsl(400, 0%, 0%)", "hsl(0 0% 0%)"},
		colormodel.FormatHWB:  {"hwb(0 0 0)", "hwb(0 0% 200%)"},
		colormodel.FormatCMYK: {"device-cmyk(0 0 0 0)", "cmyk(0% 0% 0% 0%)"},
		colormodel.FormatLCH:  {"lch(", "lch(120% 0 0)"},
		colormodel.FormatXYZ:  {"color(xyz)", "color(xyz 1 2)"},
		colormodel.FormatName: {"nope", "two words"},
	}

	for f, list := range inputs {
		for _, text := range list {
			t.Run(f.String()+"/"+text, func(t *testing.T) {
				e := newTestEditor(t, "#336699", Options{})
				before := e.Record()

				if err := e.Input(f, text); err == nil {
					t.Fatalf("Input(%q) should fail", text)
				}
				if n := countErrors(e); n != 1 {
					t.Errorf("errors = %d, want 1", n)
				}
				if e.Field(f).Err == nil {
					t.Errorf("error should be on %s", f)
				}
				after := e.Record()
				for _, other := range colormodel.Formats {
					if other != f && before.Get(other) != after.Get(other) {
						t.Errorf("%s changed: %q -> %q", other, before.Get(other), after.Get(other))
					}
				}
			})
		}
	}
}

func TestFocusedFieldIsNotOverwritten(t *testing.T) {
	e := newTestEditor(t, "#ff0000", Options{})

	e.Focus(colormodel.FormatHSL)
	_ = e.Input(colormodel.FormatHSL, "hsl(12")

	if err := e.Input(colormodel.FormatHex, "#00ff00"); err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if got := e.Field(colormodel.FormatHSL).Text; got != "hsl(12" {
		t.Errorf("focused field was overwritten: %q", got)
	}
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(0, 255, 0)" {
		t.Errorf("unfocused field not refreshed: %q", got)
	}
	if e.Field(colormodel.FormatHSL).Err != nil {
		t.Error("errors should clear when the color changes through another path")
	}

	e.SetColor(mustColor(t, "#0000ff"))
	if got := e.Field(colormodel.FormatHSL).Text; got != "hsl(12" {
		t.Errorf("focused field was overwritten by SetColor: %q", got)
	}

	e.Blur(colormodel.FormatHSL)
	e.Blur(colormodel.FormatHex)
	e.SetColor(mustColor(t, "#0000ff"))
	if got := e.Field(colormodel.FormatHSL).Text; got != "hsl(240, 100%, 50%)" {
		t.Errorf("blurred field not refreshed: %q", got)
	}
}

func TestValidKeystrokesCommitWhileFocused(t *testing.T) {
	e := newTestEditor(t, "#000000", Options{})

	for _, text := range []string{"#", "#f", "#ff", "#fff"} {
		_ = e.Input(colormodel.FormatHex, text)
	}
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(255, 255, 255)" {
		t.Errorf("rgb = %q, want white after #fff", got)
	}
	if !e.Focused(colormodel.FormatHex) {
		t.Error("typing should focus the field")
	}

	_ = e.Input(colormodel.FormatHex, "#fff0")
	_ = e.Input(colormodel.FormatHex, "#fff00")
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(255, 255, 255)" {
		t.Errorf("rgb = %q, want white from #fff0", got)
	}
	if got := e.Color().Alpha; got != 0 {
		t.Errorf("alpha = %d, want 0 from the four-digit form", got)
	}
	if e.Field(colormodel.FormatHex).Err == nil {
		t.Error("#fff00 should leave an error on hex")
	}
}

func TestAlphaScenario(t *testing.T) {
	e := newTestEditor(t, "#ff0000", Options{ShowAlpha: true})

	e.SetColor(e.Color().WithAlpha(50))

	if got := e.Field(colormodel.FormatHex).Text; got != "#ff000080" {
		t.Errorf("hex = %q, want #ff000080", got)
	}
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("rgb = %q, want rgba(255, 0, 0, 0.5)", got)
	}

	e.SetShowAlpha(false)
	if got := e.Field(colormodel.FormatHex).Text; got != "#ff0000" {
		t.Errorf("hex without alpha = %q, want #ff0000", got)
	}
}

func TestNameField(t *testing.T) {
	e := newTestEditor(t, "#000000", Options{})

	if err := e.Input(colormodel.FormatName, "Tomato"); err != nil {
		t.Fatalf("Input(Tomato) failed: %v", err)
	}
	if got := e.Field(colormodel.FormatHex).Text; got != "#ff6347" {
		t.Errorf("hex = %q, want #ff6347", got)
	}
	if e.Field(colormodel.FormatName).Approx {
		t.Error("typed exact name should not be approx")
	}

	err := e.Input(colormodel.FormatName, "tomatoes")
	if !errors.Is(err, colormodel.ErrUnsupported) {
		t.Errorf("unknown name error = %v, want unsupported", err)
	}
	if got := e.Field(colormodel.FormatHex).Text; got != "#ff6347" {
		t.Errorf("unknown name should not fall back, hex = %q", got)
	}
}

func TestRevert(t *testing.T) {
	e := newTestEditor(t, "#0f85fa", Options{})

	e.Focus(colormodel.FormatHex)
	_ = e.Input(colormodel.FormatHex, "#000")
	_ = e.Input(colormodel.FormatHex, "#000z")

	e.Revert(colormodel.FormatHex)
	if got := e.Field(colormodel.FormatHex); got.Text != "#0f85fa" || got.Err != nil {
		t.Errorf("hex after revert = %+v", got)
	}
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(15, 133, 250)" {
		t.Errorf("rgb after revert = %q", got)
	}

	e.Revert(colormodel.FormatRGB)
	if got := e.Field(colormodel.FormatRGB).Text; got != "rgb(15, 133, 250)" {
		t.Errorf("Revert of an unfocused field should be a no-op, got %q", got)
	}
}

func TestRevertApproximateName(t *testing.T) {
	e := newTestEditor(t, "#0f85fa", Options{})
	original := e.Color()

	e.Focus(colormodel.FormatName)
	_ = e.Input(colormodel.FormatName, "red")
	e.Revert(colormodel.FormatName)

	if e.Color() != original {
		t.Error("revert should restore the color from focus time, not the nearest name")
	}
	if name := e.Field(colormodel.FormatName); !name.Approx {
		t.Errorf("name field = %+v, want approx again", name)
	}
}

func TestSubscribe(t *testing.T) {
	e := newTestEditor(t, "#000000", Options{})

	var changes []Change
	e.Subscribe(func(c Change) { changes = append(changes, c) })

	_ = e.Input(colormodel.FormatRGB, "rgb(1,2,3")
	_ = e.Input(colormodel.FormatRGB, "rgb(1,2,3)")
	e.SetColor(mustColor(t, "#ffffff"))

	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(changes))
	}
	if changes[0].Format != colormodel.FormatRGB || changes[0].Value != "rgb(1,2,3)" {
		t.Errorf("change = %+v", changes[0])
	}
}

func TestCopy(t *testing.T) {
	clip := &fakeClipboard{}
	c := mustColor(t, "#ff0000")
	e := New(c, Options{CopiedReset: 20 * time.Millisecond}, clip)
	defer e.Close()

	if err := e.Copy(context.Background(), colormodel.FormatHex); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if len(clip.writes) != 1 || clip.writes[0] != "#ff0000" {
		t.Errorf("clipboard writes = %v", clip.writes)
	}
	if !e.Field(colormodel.FormatHex).Copied {
		t.Error("copied flag should be set")
	}

	deadline := time.Now().Add(2 * time.Second)
	for e.Field(colormodel.FormatHex).Copied {
		if time.Now().After(deadline) {
			t.Fatal("copied flag was not reset")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCopyFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	c := mustColor(t, "#ff0000")
	e := New(c, Options{}, clip)
	defer e.Close()

	if err := e.Copy(context.Background(), colormodel.FormatRGB); err == nil {
		t.Fatal("Copy should report the clipboard error")
	}
	if e.Field(colormodel.FormatRGB).Copied {
		t.Error("copied flag should stay unset on failure")
	}
	if e.Color() != c {
		t.Error("copy failure must not touch the color")
	}
}

func mustColor(t *testing.T, hex string) colormodel.Color {
	t.Helper()
	c, err := colormodel.Parse(hex, colormodel.FormatHex)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", hex, err)
	}
	return c
}
