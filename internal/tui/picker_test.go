package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/testutil"
)

func mustColor(t *testing.T, s string) colormodel.Color {
	t.Helper()
	c, _, err := colormodel.ParseAny(s)
	if err != nil {
		t.Fatalf("ParseAny(%q): %v", s, err)
	}
	return c
}

func newTestModel(t *testing.T, clip *testutil.Clipboard) *pickerModel {
	t.Helper()
	opts := PickOptions{
		Initial: mustColor(t, "#0f85fa"),
		Format:  colormodel.FormatHex,
	}
	if clip != nil {
		opts.Clipboard = clip
	}
	m := newPickerModel(context.Background(), opts)
	m.profile = termenv.Ascii
	t.Cleanup(m.Close)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *pickerModel, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestKeysMoveHueAndSyncFields(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.picker.HSL().H

	m.Update(keyRunes("l"))

	if got := m.picker.HSL().H; got != before+1 {
		t.Errorf("hue = %v, want %v", got, before+1)
	}
	if m.editor.Color() != m.picker.Color() {
		t.Error("editor color should follow the surface")
	}
	if got, want := m.inputs[colormodel.FormatHex].Value(), m.editor.Field(colormodel.FormatHex).Text; got != want {
		t.Errorf("hex input = %q, want %q", got, want)
	}
	if m.inputs[colormodel.FormatHex].Value() == "#0f85fa" {
		t.Error("hex input should change with the hue")
	}
}

func TestMouseOnHueAndPlane(t *testing.T) {
	m := newTestModel(t, nil)
	g := m.geom

	// left end of the hue ramp, then the top-right plane corner
	press(m, g.left, g.hueRow)
	if h := m.picker.HSL().H; h != 0 {
		t.Fatalf("hue = %v after clicking the ramp start, want 0", h)
	}
	press(m, g.left+g.planeW-1, g.planeTop)

	if got := m.editor.Field(colormodel.FormatHex).Text; got != "#ff0000" {
		t.Errorf("hex = %q, want #ff0000", got)
	}
	if got := m.inputs[colormodel.FormatRGB].Value(); got != "rgb(255, 0, 0)" {
		t.Errorf("rgb input = %q", got)
	}
	if m.picker.Dragging() {
		t.Error("release should end the drag")
	}
}

func TestTypingIntoFieldMovesSurface(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(keyRunes("1"))
	if m.focused != int(colormodel.FormatHex) {
		t.Fatalf("focused = %d, want hex", m.focused)
	}

	m.inputs[colormodel.FormatHex].SetValue("")
	m.Update(keyRunes("#ff0000"))

	if got := m.picker.RGB(); got != [3]uint8{255, 0, 0} {
		t.Errorf("surface rgb = %v, want red", got)
	}
	if got := m.inputs[colormodel.FormatName].Value(); got != "red" {
		t.Errorf("name input = %q, want red", got)
	}

	m.Update(keyRunes("zz"))
	if f := m.editor.Field(colormodel.FormatHex); f.Err == nil {
		t.Error("invalid hex should set a field error")
	}
	if got := m.picker.RGB(); got != [3]uint8{255, 0, 0} {
		t.Errorf("invalid input changed the surface: %v", got)
	}
}

func TestEscapeRevertsField(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(keyRunes("2"))
	m.inputs[colormodel.FormatRGB].SetValue("")
	m.Update(keyRunes("rgb(0, 0, 0)"))
	if got := m.picker.RGB(); got != [3]uint8{0, 0, 0} {
		t.Fatalf("surface rgb = %v, want black", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.focused != noField {
		t.Error("esc should leave the field")
	}
	if got := m.picker.RGB(); got != [3]uint8{15, 133, 250} {
		t.Errorf("surface rgb = %v, want the color at focus time", got)
	}
	if got := m.inputs[colormodel.FormatRGB].Value(); got != "rgb(15, 133, 250)" {
		t.Errorf("rgb input = %q", got)
	}
}

func TestClickFocusesField(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, m.geom.left+8, m.geom.fieldsTop+int(colormodel.FormatHSL))
	if m.focused != int(colormodel.FormatHSL) {
		t.Errorf("focused = %d, want hsl", m.focused)
	}
	if !m.editor.Focused(colormodel.FormatHSL) {
		t.Error("editor should suppress updates to the focused field")
	}

	press(m, m.geom.left, m.geom.planeTop)
	if m.focused != noField {
		t.Error("clicking the plane should blur the field")
	}
}

func TestEnterPicksColor(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if m.result == nil || m.result.Cancelled {
		t.Fatalf("result = %+v", m.result)
	}
	if m.result.Value != "#0f85fa" || m.result.Format != colormodel.FormatHex {
		t.Errorf("result = %+v", m.result)
	}
}

func TestQuitCancels(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(keyRunes("q"))
	if m.result == nil || !m.result.Cancelled {
		t.Errorf("result = %+v, want cancelled", m.result)
	}
}

func TestCopyKey(t *testing.T) {
	clip := &testutil.Clipboard{}
	m := newTestModel(t, clip)

	_, cmd := m.Update(keyRunes("c"))
	if cmd == nil {
		t.Fatal("copy should return a command")
	}
	msg := cmd()
	m.Update(msg)

	if clip.Last() != "#0f85fa" {
		t.Errorf("clipboard = %q", clip.Last())
	}
	if !strings.Contains(m.status, "copied hex") {
		t.Errorf("status = %q", m.status)
	}
	if !m.editor.Field(colormodel.FormatHex).Copied {
		t.Error("hex field should show the copied indicator")
	}
}

func TestResizeEndsDrag(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	m.Update(tea.MouseMsg{X: m.geom.left, Y: m.geom.planeTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.picker.Dragging() {
		t.Fatal("press on the plane should start a drag")
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.picker.Dragging() {
		t.Error("resize should end the drag")
	}
	if m.geom.planeW != 72 {
		t.Errorf("planeW = %d", m.geom.planeW)
	}
}

func TestInitialSizeKeepsPickerActive(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if !m.picker.Active() {
		t.Fatal("the initial size message should not close the picker")
	}
	if !strings.Contains(m.View(), "◎") {
		t.Error("an active picker should show the plane marker")
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.picker.Active() {
		t.Fatal("a real resize should close the picker")
	}
	v := m.View()
	if strings.Contains(v, "◎") || strings.Contains(v, "┃") {
		t.Error("an inactive picker should hide its pointer marks")
	}
	if !strings.Contains(v, "picker inactive") {
		t.Error("help line should report the inactive picker")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !m.picker.Active() {
		t.Error("adjusting with the keyboard should reopen the picker")
	}
}

func TestOutsideClickHidesMarks(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, m.geom.left+m.geom.planeW+5, m.geom.planeTop)
	if m.picker.Active() {
		t.Fatal("a press outside the surfaces should close the picker")
	}
	if strings.Contains(m.View(), "◎") {
		t.Error("plane marker should be hidden while inactive")
	}

	press(m, m.geom.left, m.geom.planeTop)
	if !m.picker.Active() || !strings.Contains(m.View(), "◎") {
		t.Error("a press on the plane should reopen the picker")
	}
}

func TestHueKeysWrap(t *testing.T) {
	m := newTestModel(t, nil)

	m.picker.SetHue(0)
	m.Update(keyRunes("h"))
	if got := m.picker.HSL().H; got != 359 {
		t.Errorf("hue = %v after stepping below 0, want 359", got)
	}
	m.Update(keyRunes("l"))
	if got := m.picker.HSL().H; got != 0 {
		t.Errorf("hue = %v after stepping past 359, want 0", got)
	}
}

func TestViewShowsFields(t *testing.T) {
	m := newTestModel(t, nil)
	v := m.View()

	for _, want := range []string{"hyprpick", "HEX", "#0f85fa", "rgb(15, 133, 250)", "NAME"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(v, "\n") + 1; lines != m.geom.fieldsTop+len(colormodel.Formats)+2 {
		t.Errorf("view has %d lines", lines)
	}
}
