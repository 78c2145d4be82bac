package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/hyprpick/internal/clipboard"
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/editor"
	"github.com/leonardotrapani/hyprpick/internal/surface"
)

// PickOptions configures the terminal picker.
type PickOptions struct {
	Initial   colormodel.Color
	Format    colormodel.Format
	ShowAlpha bool
	Editor    editor.Options
	Clipboard clipboard.Writer
}

// PickResult is the color accepted with enter, or Cancelled when the user quit.
type PickResult struct {
	Color     colormodel.Color
	Format    colormodel.Format
	Value     string
	Cancelled bool
}

var fieldLabels = map[colormodel.Format]string{
	colormodel.FormatHex:  "HEX",
	colormodel.FormatRGB:  "RGB",
	colormodel.FormatHSL:  "HSL",
	colormodel.FormatHWB:  "HWB",
	colormodel.FormatCMYK: "CMYK",
	colormodel.FormatLCH:  "LCH",
	colormodel.FormatXYZ:  "XYZ",
	colormodel.FormatName: "NAME",
}

const noField = -1

type copiedMsg struct {
	format colormodel.Format
	err    error
}

type refreshMsg struct{}

type pickerModel struct {
	ctx    context.Context
	window *surface.Window
	picker *surface.Picker
	editor *editor.Editor

	inputs  []textinput.Model
	focused int

	format      colormodel.Format
	showAlpha   bool
	copiedReset time.Duration
	profile     termenv.Profile

	width  int
	height int
	sized  bool
	geom   geometry

	status string
	result *PickResult
}

func newPickerModel(ctx context.Context, opts PickOptions) *pickerModel {
	if opts.Editor.CopiedReset <= 0 {
		opts.Editor.CopiedReset = editor.DefaultCopiedReset
	}
	opts.Editor.ShowAlpha = opts.ShowAlpha

	m := &pickerModel{
		ctx:         ctx,
		window:      surface.NewWindow(),
		editor:      editor.New(opts.Initial, opts.Editor, opts.Clipboard),
		focused:     noField,
		format:      opts.Format,
		showAlpha:   opts.ShowAlpha,
		copiedReset: opts.Editor.CopiedReset,
		profile:     termenv.EnvColorProfile(),
		width:       80,
		height:      30,
	}
	m.geom = computeGeometry(m.width, m.height, m.showAlpha)
	m.picker = surface.New(m.window, m.geom.layout(), opts.Initial, surface.Options{
		Format:    opts.Format,
		ShowAlpha: opts.ShowAlpha,
	})

	// Each side applies the other's changes without re-emitting.
	m.picker.Subscribe(func(c surface.Change) { m.editor.SetColor(c.Color) })
	m.editor.Subscribe(func(c editor.Change) { m.picker.SetColor(c.Color) })

	m.inputs = make([]textinput.Model, len(colormodel.Formats))
	for _, f := range colormodel.Formats {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 40
		ti.TextStyle = StyleFieldText
		m.inputs[f] = ti
	}
	m.syncInputs()
	return m
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// the first size message reports the initial terminal, not a resize
		if m.sized {
			m.window.Dispatch(&surface.Event{Type: surface.Resize})
		}
		m.sized = true
		m.geom = computeGeometry(m.width, m.height, m.showAlpha)
		m.picker.SetLayout(m.geom.layout())
		return m, nil

	case tea.BlurMsg:
		m.window.Dispatch(&surface.Event{Type: surface.Blur})
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.focused != noField {
			return m, m.handleFieldKey(msg)
		}
		return m, m.handleSurfaceKey(msg)

	case copiedMsg:
		if msg.err != nil {
			m.status = StyleError.Render(fmt.Sprintf("copy failed: %v", msg.err))
			return m, nil
		}
		m.status = StyleSuccess.Render(fmt.Sprintf("copied %s", msg.format))
		return m, tea.Tick(m.copiedReset+50*time.Millisecond, func(time.Time) tea.Msg {
			return refreshMsg{}
		})

	case refreshMsg:
		m.status = ""
		return m, nil
	}
	return m, nil
}

func (m *pickerModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	pos := surface.Point{X: float64(msg.X), Y: float64(msg.Y)}

	var typ surface.EventType
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		typ = surface.PointerDown
	case tea.MouseActionMotion:
		typ = surface.PointerMove
	case tea.MouseActionRelease:
		typ = surface.PointerUp
	default:
		return nil
	}

	m.window.Dispatch(&surface.Event{Type: typ, Source: surface.SourceMouse, Pos: pos})
	if typ == surface.PointerDown {
		if f, ok := m.geom.fieldAt(msg.Y); ok {
			return m.focusField(int(f))
		}
		m.blurField()
	}
	m.syncInputs()
	return nil
}

func (m *pickerModel) handleSurfaceKey(msg tea.KeyMsg) tea.Cmd {
	hsl := m.picker.HSL()

	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		m.result = &PickResult{Cancelled: true}
		return tea.Quit
	case "enter":
		c := m.editor.Color()
		m.result = &PickResult{
			Color:  c,
			Format: m.format,
			Value:  m.editor.Field(m.format).Text,
		}
		return tea.Quit
	case "tab":
		return m.focusField(0)
	case "shift+tab":
		return m.focusField(len(colormodel.Formats) - 1)
	case "left", "h":
		m.picker.SetHue(math.Mod(hsl.H-1+360, 360))
	case "right", "l":
		m.picker.SetHue(math.Mod(hsl.H+1, 360))
	case "up", "k":
		m.picker.SetSaturationLightness(hsl.S, hsl.L+1)
	case "down", "j":
		m.picker.SetSaturationLightness(hsl.S, hsl.L-1)
	case "H":
		m.picker.SetSaturationLightness(hsl.S-1, hsl.L)
	case "L":
		m.picker.SetSaturationLightness(hsl.S+1, hsl.L)
	case "[":
		if m.showAlpha {
			m.picker.SetAlpha(m.picker.Alpha() - 1)
		}
	case "]":
		if m.showAlpha {
			m.picker.SetAlpha(m.picker.Alpha() + 1)
		}
	case "c", "y":
		return m.copyCmd(m.format)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '8' {
			return m.focusField(int(key[0] - '1'))
		}
		return nil
	}
	m.picker.Activate()
	m.syncInputs()
	return nil
}

func (m *pickerModel) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	f := colormodel.Format(m.focused)

	switch msg.String() {
	case "ctrl+c":
		m.result = &PickResult{Cancelled: true}
		return tea.Quit
	case "esc":
		m.editor.Revert(f)
		m.blurField()
		return nil
	case "enter":
		m.blurField()
		return nil
	case "tab":
		return m.focusField((m.focused + 1) % len(m.inputs))
	case "shift+tab":
		return m.focusField((m.focused + len(m.inputs) - 1) % len(m.inputs))
	case "ctrl+y":
		return m.copyCmd(f)
	}

	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if after := m.inputs[f].Value(); after != before {
		// Parse failures stay on the field; the color is untouched.
		_ = m.editor.Input(f, after)
		m.syncInputs()
	}
	return cmd
}

func (m *pickerModel) focusField(i int) tea.Cmd {
	if i < 0 || i >= len(m.inputs) {
		return nil
	}
	m.blurField()
	m.focused = i
	m.editor.Focus(colormodel.Format(i))
	return m.inputs[i].Focus()
}

func (m *pickerModel) blurField() {
	if m.focused == noField {
		return
	}
	m.editor.Blur(colormodel.Format(m.focused))
	m.inputs[m.focused].Blur()
	m.focused = noField
	m.syncInputs()
}

// syncInputs copies editor field texts into every unfocused text input.
func (m *pickerModel) syncInputs() {
	for _, f := range colormodel.Formats {
		if int(f) == m.focused {
			continue
		}
		m.inputs[f].SetValue(m.editor.Field(f).Text)
	}
}

func (m *pickerModel) copyCmd(f colormodel.Format) tea.Cmd {
	ed, ctx := m.editor, m.ctx
	return func() tea.Msg {
		return copiedMsg{format: f, err: ed.Copy(ctx, f)}
	}
}

func (m *pickerModel) View() string {
	var b strings.Builder
	g := m.geom
	hsl := m.picker.HSL()

	value := m.editor.Field(m.format).Text
	fmt.Fprintf(&b, "%s  %s\n\n", StyleTitle.Render("hyprpick"), StyleMuted.Render(value))

	// an inactive picker hides its pointer marks until the next press inside
	active := m.picker.Active()
	markX, markY, hueMark, alphaMark := -1, -1, -1, -1
	if active {
		px, py := m.picker.PlanePointer()
		markX = int(px/100*float64(g.planeW-1) + 0.5)
		markY = int(py/100*float64(g.planeH-1) + 0.5)
		hueMark = int(m.picker.HuePointer()*float64(g.planeW-1) + 0.5)
		alphaMark = int(m.picker.AlphaPointer()*float64(g.planeW-1) + 0.5)
	}
	for _, row := range renderPlane(hsl.H, g.planeW, g.planeH, markX, markY, m.profile) {
		b.WriteString(strings.Repeat(" ", g.left))
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", g.left))
	b.WriteString(renderHueRamp(g.planeW, hueMark, m.profile))
	b.WriteString("\n\n")

	if m.showAlpha {
		b.WriteString(strings.Repeat(" ", g.left))
		b.WriteString(renderAlphaRamp(m.picker.RGB(), g.planeW, alphaMark, m.profile))
		b.WriteString("\n\n")
	}

	for _, f := range colormodel.Formats {
		b.WriteString(m.fieldView(f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	} else if !active && m.focused == noField {
		b.WriteString(StyleSubtle.Render("picker inactive • click the plane or press an arrow key to resume • q quit"))
	} else if m.focused != noField {
		b.WriteString(StyleSubtle.Render("type to edit • tab next • esc revert • enter done • ctrl+y copy"))
	} else {
		b.WriteString(StyleSubtle.Render("drag or ←/→ hue • ↑/↓ lightness • [/] alpha • 1-8/tab edit • c copy • enter pick • q quit"))
	}
	return b.String()
}

func (m *pickerModel) fieldView(f colormodel.Format) string {
	field := m.editor.Field(f)

	label := StyleLabel.Render(fmt.Sprintf("%-5s", fieldLabels[f]))
	if int(f) == m.focused {
		label = StyleHighlight.Render(fmt.Sprintf("%-5s", fieldLabels[f]))
	}

	var note string
	switch {
	case field.Err != nil:
		note = StyleError.Render(field.Err.Kind.String() + ": " + field.Err.Msg)
	case field.Copied:
		note = StyleSuccess.Render("copied")
	case field.Approx:
		note = StyleMuted.Render("≈ nearest")
	}

	return fmt.Sprintf("%s%s %s %s", strings.Repeat(" ", m.geom.left), label, m.inputs[f].View(), note)
}

// Close releases the surface listeners and pending editor timers.
func (m *pickerModel) Close() {
	m.picker.Close()
	m.editor.Close()
}

// RunPicker runs the interactive picker until the user picks a color or quits.
func RunPicker(ctx context.Context, opts PickOptions) (*PickResult, error) {
	m := newPickerModel(ctx, opts)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return &PickResult{Cancelled: true}, err
	}
	if m.result == nil {
		return &PickResult{Cancelled: true}, nil
	}
	return m.result, nil
}
