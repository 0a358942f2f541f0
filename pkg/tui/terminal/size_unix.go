// ABOUTME: Direct TIOCGWINSZ ioctl size provider for Unix terminals
// ABOUTME: Reads the window size of an open terminal descriptor

//go:build unix

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// IoctlSize asks the kernel for the window size of Fd.
type IoctlSize struct {
	Fd int
}

// Size performs the TIOCGWINSZ ioctl.
func (p IoctlSize) Size() (cols, rows uint16, err error) {
	ws, err := unix.IoctlGetWinsize(p.Fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("TIOCGWINSZ on fd %d: %w", p.Fd, err)
	}
	return ws.Col, ws.Row, nil
}
