// ABOUTME: VirtualTerminal implements Device for testing without a real TTY
// ABOUTME: Models cursor motion, line wrapping, and DSR replies for written escapes

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// VirtualTerminal is a fake Device for unit tests. It records written output,
// tracks the cursor the way an xterm-compatible terminal would (including
// deferred wrap at the right margin), and answers ESC[6n with a cursor
// position report that later Reads return.
type VirtualTerminal struct {
	mu sync.Mutex

	out   bytes.Buffer
	in    bytes.Buffer
	cols  uint16
	rows  uint16
	color bool

	col, row    uint16
	pendingWrap bool
	esc         []byte
	width       func(cluster string) int

	flushes    int
	emptyReads int
	readErr    error
}

var _ Device = (*VirtualTerminal)(nil)

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions and
// the cursor at (1, 1). Grapheme clusters advance the cursor by
// uniseg.StringWidth.
func NewVirtualTerminal(cols, rows uint16) *VirtualTerminal {
	return &VirtualTerminal{
		cols:  cols,
		rows:  rows,
		col:   1,
		row:   1,
		width: uniseg.StringWidth,
	}
}

// Size returns the configured dimensions.
func (v *VirtualTerminal) Size() (cols, rows uint16) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cols, v.rows
}

// ColorEnabled reports the colour flag set with SetColor.
func (v *VirtualTerminal) ColorEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.color
}

// Flush counts flushes; output is never buffered.
func (v *VirtualTerminal) Flush() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.flushes++
	return nil
}

// Write records p and interprets it.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Write(p)
	v.interpret(p)
	return len(p), nil
}

// Read returns queued input. Configured empty reads are served first, then
// a configured error; with no input queued it returns io.EOF instead of
// blocking.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.emptyReads > 0 {
		v.emptyReads--
		return 0, nil
	}
	if v.readErr != nil {
		return 0, v.readErr
	}
	if v.in.Len() == 0 {
		return 0, io.EOF
	}
	return v.in.Read(p)
}

func (v *VirtualTerminal) interpret(p []byte) {
	text := p[:0:0]
	for _, b := range p {
		if v.esc != nil {
			v.esc = append(v.esc, b)
			v.stepEscape()
			continue
		}
		switch b {
		case 0x1b:
			v.advance(string(text))
			text = text[:0]
			v.esc = []byte{b}
		case '\r':
			v.advance(string(text))
			text = text[:0]
			v.col, v.pendingWrap = 1, false
		case '\n':
			v.advance(string(text))
			text = text[:0]
			v.lineFeed()
		default:
			text = append(text, b)
		}
	}
	v.advance(string(text))
}

// stepEscape consumes the escape accumulated so far once it is complete.
func (v *VirtualTerminal) stepEscape() {
	seq := v.esc
	if len(seq) == 2 && seq[1] != '[' {
		v.esc = nil
		return
	}
	if len(seq) < 3 {
		return
	}
	final := seq[len(seq)-1]
	if final < 0x40 || final > 0x7e {
		return
	}
	v.esc = nil
	v.csi(string(seq[2:len(seq)-1]), final)
}

func (v *VirtualTerminal) csi(params string, final byte) {
	switch final {
	case 'H':
		row, col := 1, 1
		fields := strings.Split(params, ";")
		if n, err := strconv.Atoi(fields[0]); err == nil && n > 0 {
			row = n
		}
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				col = n
			}
		}
		v.row = clamp(row, v.rows)
		v.col = clamp(col, v.cols)
		v.pendingWrap = false
	case 'n':
		if params == "6" {
			fmt.Fprintf(&v.in, "\x1b[%d;%dR", v.row, v.col)
		}
	}
}

// advance moves the cursor over printable text, wrapping at the right margin.
func (v *VirtualTerminal) advance(text string) {
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		w := v.width(cluster)
		if w <= 0 {
			continue
		}
		if v.pendingWrap || int(v.col)+w-1 > int(v.cols) {
			v.col = 1
			v.pendingWrap = false
			v.lineFeed()
		}
		next := int(v.col) + w
		if next > int(v.cols) {
			v.col = v.cols
			v.pendingWrap = true
			continue
		}
		v.col = uint16(next)
	}
}

func (v *VirtualTerminal) lineFeed() {
	if v.row < v.rows {
		v.row++
	}
}

func clamp(n int, limit uint16) uint16 {
	if n > int(limit) {
		return limit
	}
	return uint16(n)
}

// --- Test helpers (not part of Device) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// Reset clears the output buffer. Cursor state is kept.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// Cursor returns the modelled cursor as (col, row).
func (v *VirtualTerminal) Cursor() (col, row uint16) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.col, v.row
}

// Flushes returns how many times Flush was called.
func (v *VirtualTerminal) Flushes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.flushes
}

// SetColor sets the value reported by ColorEnabled.
func (v *VirtualTerminal) SetColor(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.color = on
}

// SetWidthFunc replaces the cluster width rule, to emulate terminals that
// disagree about emoji or East Asian widths.
func (v *VirtualTerminal) SetWidthFunc(fn func(cluster string) int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = fn
}

// QueueInput appends bytes for later Reads.
func (v *VirtualTerminal) QueueInput(p []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.in.Write(p)
}

// SetEmptyReads makes the next n Reads return (0, nil).
func (v *VirtualTerminal) SetEmptyReads(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.emptyReads = n
}

// FailReads makes every Read return err.
func (v *VirtualTerminal) FailReads(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}
