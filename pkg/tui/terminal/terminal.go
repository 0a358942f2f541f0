// ABOUTME: Defines the Device interface shared by real terminal sessions and fakes
// ABOUTME: Screen control and cursor queries are written against Device only

package terminal

import "io"

// Device is a byte-stream terminal: writes may be buffered until Flush, and
// reads return whatever the terminal sends back (key presses, DSR reports).
type Device interface {
	io.Reader
	io.Writer

	// Flush pushes buffered output to the terminal. It must be called before
	// any read that waits on a response to that output.
	Flush() error

	// Size returns the dimensions captured when the device was opened.
	Size() (cols, rows uint16)

	// ColorEnabled reports whether SGR colour escapes should be emitted.
	ColorEnabled() bool
}
