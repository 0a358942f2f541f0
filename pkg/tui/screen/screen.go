// ABOUTME: Screen issues hardcoded ANSI escapes for cursor, clearing, scrolling, and colour
// ABOUTME: Every operation is a write of a fixed byte sequence to a terminal.Device

package screen

import (
	"fmt"
	"io"

	"github.com/mauromedda/boxwidth/pkg/tui/terminal"
)

// Color selects one of the eight standard foreground colours (SGR 30-37).
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor maps a colour name to its Color.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// ClearMode selects an erase-in-display or erase-in-line variant.
type ClearMode uint8

const (
	ClearScreen ClearMode = iota
	ClearToStartOfScreen
	ClearToEndOfScreen
	ClearLine
	ClearToStartOfLine
	ClearToEndOfLine
)

var clearSeq = [...]string{
	ClearScreen:          "\x1b[2J",
	ClearToStartOfScreen: "\x1b[1J",
	ClearToEndOfScreen:   "\x1b[0J",
	ClearLine:            "\x1b[2K",
	ClearToStartOfLine:   "\x1b[1K",
	ClearToEndOfLine:     "\x1b[0K",
}

// Screen drives a terminal.Device with escape sequences. It is not safe for
// concurrent use.
type Screen struct {
	dev terminal.Device
}

// New returns a Screen writing to dev.
func New(dev terminal.Device) *Screen {
	return &Screen{dev: dev}
}

// Size returns the device dimensions captured at open time.
func (s *Screen) Size() (cols, rows uint16) {
	return s.dev.Size()
}

// MoveTo positions the cursor at column x, row y (both 1-based). Zero is
// clamped to 1.
func (s *Screen) MoveTo(x, y uint16) error {
	return s.printf("\x1b[%d;%dH", max(y, 1), max(x, 1))
}

// Clear erases part of the screen or current line without moving the cursor.
func (s *Screen) Clear(mode ClearMode) error {
	if int(mode) >= len(clearSeq) {
		return fmt.Errorf("unknown clear mode %d", mode)
	}
	return s.Write(clearSeq[mode])
}

// Scroll shifts the visible content up by n lines and flushes, so room
// exists before drawing past the bottom edge.
func (s *Screen) Scroll(n uint16) error {
	if err := s.printf("\x1b[%dS", n); err != nil {
		return err
	}
	return s.Flush()
}

// Write emits text unmodified.
func (s *Screen) Write(text string) error {
	if _, err := io.WriteString(s.dev, text); err != nil {
		return fmt.Errorf("writing screen text: %w", err)
	}
	return nil
}

// WriteColored emits text in colour c, followed by an attribute reset. With
// colour disabled on the device, text is written unmodified.
func (s *Screen) WriteColored(c Color, text string) error {
	if c > White {
		return fmt.Errorf("unknown colour %d", uint8(c))
	}
	if !s.dev.ColorEnabled() {
		return s.Write(text)
	}
	return s.printf("\x1b[3%dm%s\x1b[m", uint8(c), text)
}

// Flush pushes buffered output to the terminal.
func (s *Screen) Flush() error {
	return s.dev.Flush()
}

func (s *Screen) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.dev, format, args...); err != nil {
		return fmt.Errorf("writing escape sequence: %w", err)
	}
	return nil
}
