package bus

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const SockName = "control.sock"
const PidName = "hyprpick.pid"
const ProtoVer = "1.0"

// Response kinds, the first word of every reply line.
const (
	RespOK     = "OK"
	RespErr    = "ERR"
	RespValue  = "VALUE"
	RespStatus = "STATUS"
)

const dialTimeout = 2 * time.Second

var ErrDaemonNotRunning = errors.New("daemon not running")

// ~/.cache/hyprpick/control.sock
func SockPath() (string, error) {
	return getSockPath()
}

// ~/.cache/hyprpick/hyprpick.pid
func PidPath() (string, error) {
	return getPidPath()
}

func getSockPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hyprpick", SockName), nil
}

func getPidPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hyprpick", PidName), nil
}

type socketManager struct {
	path string
}

func newSocketManager() (*socketManager, error) {
	sp, err := getSockPath()
	if err != nil {
		return nil, err
	}
	return &socketManager{path: sp}, nil
}

func (s *socketManager) listen() (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, err
	}
	_ = os.Remove(s.path) // stale socket from last run
	return net.Listen("unix", s.path)
}

func (s *socketManager) dial() (net.Conn, error) {
	return net.DialTimeout("unix", s.path, dialTimeout)
}

// sendCommand writes one request line and reads one response line.
func (s *socketManager) sendCommand(line string) (string, error) {
	if strings.ContainsAny(line, "\r\n") {
		return "", fmt.Errorf("command must be a single line")
	}

	c, err := s.dial()
	if err != nil {
		if errors.Is(err, syscall.ENOENT) || errors.Is(err, syscall.ECONNREFUSED) {
			return "", fmt.Errorf("%w: %v", ErrDaemonNotRunning, err)
		}
		return "", err
	}
	defer c.Close()

	if _, err := fmt.Fprintf(c, "%s\n", line); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	resp, err := bufio.NewReader(c).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return strings.TrimRight(resp, "\n"), nil
}

type pidManager struct {
	path string
}

func newPidManager() (*pidManager, error) {
	pp, err := getPidPath()
	if err != nil {
		return nil, err
	}
	return &pidManager{path: pp}, nil
}

// checkExisting fails if the pid file names a live process. Stale or
// malformed pid files are removed.
func (p *pidManager) checkExisting() error {
	pidData, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
	if err != nil {
		_ = os.Remove(p.path)
		return nil
	}

	if !p.isProcessAlive(pid) {
		_ = os.Remove(p.path)
		return nil
	}

	return fmt.Errorf("daemon already running with PID %d", pid)
}

func (p *pidManager) isProcessAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}

func (p *pidManager) create() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p.path, []byte(strconv.Itoa(os.Getpid())), 0o600)
}

func (p *pidManager) remove() error {
	return os.Remove(p.path)
}

func Listen() (net.Listener, error) {
	sm, err := newSocketManager()
	if err != nil {
		return nil, err
	}
	return sm.listen()
}

func Dial() (net.Conn, error) {
	sm, err := newSocketManager()
	if err != nil {
		return nil, err
	}
	return sm.dial()
}

// SendCommand sends one request line, such as "set #ff0000" or "status", to
// the daemon and returns its response line without the trailing newline.
func SendCommand(line string) (string, error) {
	sm, err := newSocketManager()
	if err != nil {
		return "", err
	}
	return sm.sendCommand(line)
}

func CheckExistingDaemon() error {
	pm, err := newPidManager()
	if err != nil {
		return err
	}
	return pm.checkExisting()
}

func CreatePidFile() error {
	pm, err := newPidManager()
	if err != nil {
		return err
	}
	return pm.create()
}

func RemovePidFile() error {
	pm, err := newPidManager()
	if err != nil {
		return err
	}
	return pm.remove()
}

// ParseRequest splits a request line into its verb and the remaining
// argument text. The verb is lowercased; the argument keeps its spacing.
func ParseRequest(line string) (verb, arg string) {
	line = strings.TrimSpace(line)
	verb, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(arg)
}

// ParseResponse splits a response line into its kind and body. An ERR
// response is returned as an error carrying the body.
func ParseResponse(resp string) (kind, body string, err error) {
	kind, body, _ = strings.Cut(strings.TrimSpace(resp), " ")
	switch kind {
	case RespOK, RespValue, RespStatus:
		return kind, body, nil
	case RespErr:
		return kind, body, errors.New(body)
	}
	return kind, body, fmt.Errorf("malformed response %q", resp)
}
