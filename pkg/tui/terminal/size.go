// ABOUTME: SizeProvider abstraction with ioctl and tput-backed implementations
// ABOUTME: Providers never cache; each Size call performs a fresh query

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// SizeProvider reports the current terminal dimensions in cells.
type SizeProvider interface {
	Size() (cols, rows uint16, err error)
}

// Provider names accepted by ProviderByName.
const (
	ProviderIoctl = "ioctl"
	ProviderTput  = "tput"
)

// ErrUnknownProvider is returned by ProviderByName for unrecognised names.
var ErrUnknownProvider = errors.New("unknown size provider")

// ProviderByName returns the provider registered under name, bound to tty.
// An empty name selects the ioctl provider.
func ProviderByName(name string, tty *os.File) (SizeProvider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProviderIoctl:
		return IoctlSize{Fd: int(tty.Fd())}, nil
	case ProviderTput:
		return TputSize{TTY: tty}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

// TputSize queries the terminal through the external tput command, once for
// columns and once for lines.
type TputSize struct {
	// Path is the tput binary; empty means "tput" resolved via PATH.
	Path string
	// TTY is wired to the child's stdin and stderr so tput can find the
	// terminal even though its stdout is captured.
	TTY *os.File

	run func(name string, args ...string) ([]byte, error)
}

// Size runs `tput cols` and `tput lines` and parses their decimal output.
func (t TputSize) Size() (cols, rows uint16, err error) {
	cols, err = t.query("cols")
	if err != nil {
		return 0, 0, err
	}
	rows, err = t.query("lines")
	if err != nil {
		return 0, 0, err
	}
	return cols, rows, nil
}

func (t TputSize) query(capname string) (uint16, error) {
	out, err := t.output(capname)
	if err != nil {
		return 0, fmt.Errorf("running tput %s: %w", capname, err)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parsing tput %s output %q: %w", capname, out, err)
	}
	return uint16(n), nil
}

func (t TputSize) output(capname string) ([]byte, error) {
	name := t.Path
	if name == "" {
		name = "tput"
	}
	if t.run != nil {
		return t.run(name, capname)
	}

	cmd := exec.Command(name, capname)
	if t.TTY != nil {
		cmd.Stdin = t.TTY
		cmd.Stderr = t.TTY
	}
	return cmd.Output()
}
