// ABOUTME: Session owns the controlling terminal device and its saved raw-mode state
// ABOUTME: Output is buffered; Close restores the saved state at most once

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// ErrRawModeHeld is returned when a raw-mode Session is opened while another
// raw-mode Session is still open.
var ErrRawModeHeld = errors.New("raw mode already held by another session")

// rawHeld gates raw mode to a single Session per process.
var rawHeld atomic.Bool

// Options configures Open.
type Options struct {
	// Raw puts the terminal into raw mode for the lifetime of the Session.
	Raw bool
	// Color enables SGR colour output.
	Color bool
	// Device is the terminal path; empty means DefaultDevice.
	Device string
	// SizeProvider names the provider used to capture the dimensions at open
	// time (see ProviderByName).
	SizeProvider string
}

// Session is an open terminal device. It is not safe for concurrent use.
type Session struct {
	tty   *os.File
	out   *bufio.Writer
	cols  uint16
	rows  uint16
	color bool

	prev   *term.State
	closed bool
}

var _ Device = (*Session)(nil)

// Open opens the terminal device for reading and writing and, when
// opts.Raw is set, switches it to raw mode. The caller must Close the
// Session; With does that on every exit path.
func Open(opts Options) (*Session, error) {
	path := opts.Device
	if path == "" {
		path = DefaultDevice
	}

	tty, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening terminal %s: %w", path, err)
	}

	provider, err := ProviderByName(opts.SizeProvider, tty)
	if err != nil {
		_ = tty.Close()
		return nil, err
	}
	cols, rows, err := provider.Size()
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("querying terminal size: %w", err)
	}

	s := &Session{
		tty:   tty,
		out:   bufio.NewWriter(tty),
		cols:  cols,
		rows:  rows,
		color: opts.Color,
	}

	if opts.Raw {
		if !rawHeld.CompareAndSwap(false, true) {
			_ = tty.Close()
			return nil, ErrRawModeHeld
		}
		// MakeRaw reads the current attributes before applying the raw set;
		// on failure nothing has been applied.
		state, err := term.MakeRaw(int(tty.Fd()))
		if err != nil {
			rawHeld.Store(false)
			_ = tty.Close()
			return nil, fmt.Errorf("entering raw mode: %w", err)
		}
		s.prev = state
	}

	return s, nil
}

// Size returns the dimensions captured at open time.
func (s *Session) Size() (cols, rows uint16) {
	return s.cols, s.rows
}

// ColorEnabled reports whether coloured output was requested.
func (s *Session) ColorEnabled() bool {
	return s.color
}

// IsRaw reports whether the Session currently holds raw mode.
func (s *Session) IsRaw() bool {
	return s.prev != nil
}

// Fd returns the device descriptor.
func (s *Session) Fd() uintptr {
	return s.tty.Fd()
}

// Write buffers p for the device.
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// WriteString buffers str for the device.
func (s *Session) WriteString(str string) (int, error) {
	n, err := s.out.WriteString(str)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// Read reads directly from the device. Buffered output is not flushed first.
// A read that returns no bytes reports (0, nil); os.File would turn it into
// io.EOF, but a terminal has no end of input.
func (s *Session) Read(p []byte) (int, error) {
	n, err := s.tty.Read(p)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}

// Flush writes any buffered output to the device.
func (s *Session) Flush() error {
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Close flushes output, restores the saved terminal state if raw mode was
// entered, and closes the device. Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.Flush(); err != nil {
		errs = append(errs, err)
	}
	if s.prev != nil {
		if err := term.Restore(int(s.tty.Fd()), s.prev); err != nil {
			errs = append(errs, fmt.Errorf("restoring terminal state: %w", err))
		}
		s.prev = nil
		rawHeld.Store(false)
	}
	if err := s.tty.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing terminal: %w", err))
	}
	return errors.Join(errs...)
}
