// ABOUTME: Stub ioctl size provider for platforms without TIOCGWINSZ
// ABOUTME: Only POSIX terminals are supported; use the tput provider elsewhere

//go:build !unix

package terminal

import (
	"errors"
	"fmt"
)

// IoctlSize is unsupported on this platform.
type IoctlSize struct {
	Fd int
}

// Size always fails with errors.ErrUnsupported.
func (p IoctlSize) Size() (cols, rows uint16, err error) {
	return 0, 0, fmt.Errorf("TIOCGWINSZ on fd %d: %w", p.Fd, errors.ErrUnsupported)
}
