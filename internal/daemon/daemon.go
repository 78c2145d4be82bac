package daemon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/leonardotrapani/hyprpick/internal/bus"
	"github.com/leonardotrapani/hyprpick/internal/clipboard"
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/config"
	"github.com/leonardotrapani/hyprpick/internal/editor"
	"github.com/leonardotrapani/hyprpick/internal/notify"
)

// Daemon owns one editor and serves bus commands against it. Commands are
// handled one at a time.
type Daemon struct {
	mu        sync.Mutex
	notifier  notify.Notifier
	editor    *editor.Editor
	format    colormodel.Format
	showAlpha bool

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg *config.Config, n notify.Notifier, clip clipboard.Writer) (*Daemon, error) {
	if n == nil {
		n = notify.Log{}
	}
	initial, err := cfg.InitialColor()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Daemon{
		notifier:  n,
		editor:    editor.New(initial, cfg.ToEditorOptions(), clip),
		format:    cfg.ActiveFormat(),
		showAlpha: cfg.Picker.ShowAlpha,
		ctx:       ctx,
		cancel:    cancel,
	}
	return d, nil
}

// Watch applies hot-reloaded picker settings from m.
func (d *Daemon) Watch(m *config.Manager) {
	m.OnChange(d.ApplyConfig)
}

// ApplyConfig updates the active format and alpha visibility. The current
// color is kept.
func (d *Daemon) ApplyConfig(cfg *config.Config) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.format = cfg.ActiveFormat()
	d.showAlpha = cfg.Picker.ShowAlpha
	d.editor.SetShowAlpha(cfg.Picker.ShowAlpha)
	log.Printf("Daemon: applied config (format=%s show_alpha=%v)", d.format, d.showAlpha)
}

func (d *Daemon) Color() colormodel.Color {
	return d.editor.Color()
}

func (d *Daemon) Run() error {
	if err := bus.CheckExistingDaemon(); err != nil {
		return err
	}

	ln, err := bus.Listen()
	if err != nil {
		return err
	}
	defer ln.Close()

	if err := bus.CreatePidFile(); err != nil {
		return fmt.Errorf("failed to create PID file: %w", err)
	}
	defer bus.RemovePidFile()
	defer d.editor.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received signal %v, shutting down gracefully", sig)
			d.cancel()
		case <-d.ctx.Done():
		}
	}()

	// Close the listener when context is done
	go func() {
		<-d.ctx.Done()
		ln.Close()
	}()

	log.Printf("Daemon started, listening on socket")

	for {
		c, err := ln.Accept()
		if err != nil {
			if d.ctx.Err() != nil {
				log.Printf("Shutdown requested")
				return nil
			}
			log.Printf("Accept error: %v", err)
			return fmt.Errorf("accept failed: %w", err)
		}
		go d.handle(c)
	}
}

// Stop ends Run.
func (d *Daemon) Stop() {
	d.cancel()
}

func (d *Daemon) handle(c net.Conn) {
	defer c.Close()

	line, err := bufio.NewReader(c).ReadString('\n')
	if err != nil {
		log.Printf("Client read error: %v", err)
		fmt.Fprintf(c, "ERR read_error: %v\n", err)
		return
	}

	fmt.Fprintf(c, "%s\n", d.Execute(line))
}

// Execute runs one request line and returns the response line.
func (d *Daemon) Execute(line string) string {
	verb, arg := bus.ParseRequest(line)

	d.mu.Lock()
	defer d.mu.Unlock()

	switch verb {
	case "set":
		return d.set(arg)
	case "get":
		return d.get(arg)
	case "alpha":
		return d.alpha(arg)
	case "copy":
		return d.copy(arg)
	case "status":
		return d.status()
	case "version":
		return fmt.Sprintf("%s proto=%s", bus.RespStatus, bus.ProtoVer)
	case "quit":
		d.cancel()
		return bus.RespOK + " quitting"
	case "":
		return bus.RespErr + " empty command"
	}
	log.Printf("Daemon: unknown command %q", verb)
	return fmt.Sprintf("%s unknown command %q", bus.RespErr, verb)
}

func (d *Daemon) set(text string) string {
	f, err := colormodel.Detect(text)
	if err != nil {
		return fmt.Sprintf("%s %s: %v", bus.RespErr, colormodel.KindSyntax, err)
	}

	err = d.editor.Input(f, text)
	// The daemon has no focused field; re-render the one just typed into.
	d.editor.Blur(f)
	d.editor.SetColor(d.editor.Color())
	if err != nil {
		return errorResponse(err)
	}

	value := d.active()
	log.Printf("Daemon: color set to %s", value)
	go d.notifier.ColorChanged(d.format.String(), value)
	return bus.RespOK + " " + value
}

func (d *Daemon) get(name string) string {
	f := d.format
	if name != "" {
		var err error
		if f, err = colormodel.ParseFormat(name); err != nil {
			return fmt.Sprintf("%s %s: %v", bus.RespErr, colormodel.KindUnsupported, err)
		}
	}
	return bus.RespValue + " " + d.editor.Field(f).Text
}

func (d *Daemon) alpha(arg string) string {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Sprintf("%s %s: alpha must be an integer", bus.RespErr, colormodel.KindSyntax)
	}
	if n < 0 || n > 100 {
		return fmt.Sprintf("%s %s: alpha must be between 0 and 100", bus.RespErr, colormodel.KindRange)
	}

	d.editor.SetColor(d.editor.Color().WithAlpha(n))
	value := d.active()
	go d.notifier.ColorChanged(d.format.String(), value)
	return bus.RespOK + " " + value
}

func (d *Daemon) copy(name string) string {
	f := d.format
	if name != "" {
		var err error
		if f, err = colormodel.ParseFormat(name); err != nil {
			return fmt.Sprintf("%s %s: %v", bus.RespErr, colormodel.KindUnsupported, err)
		}
	}

	if err := d.editor.Copy(d.ctx, f); err != nil {
		go d.notifier.Error(err.Error())
		return bus.RespErr + " " + err.Error()
	}
	value := d.editor.Field(f).Text
	go d.notifier.Copied(f.String(), value)
	return bus.RespOK + " copied " + value
}

func (d *Daemon) status() string {
	name := d.editor.Field(colormodel.FormatName)
	return fmt.Sprintf("%s format=%s value=%q name=%s exact=%v",
		bus.RespStatus, d.format, d.active(), name.Text, !name.Approx)
}

func (d *Daemon) active() string {
	return d.editor.Field(d.format).Text
}

func errorResponse(err error) string {
	var fe *colormodel.FormatError
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s %s: %s", bus.RespErr, fe.Kind, fe.Msg)
	}
	return bus.RespErr + " " + err.Error()
}
