// ABOUTME: Cursor position query over the device byte stream (DSR request, CPR reply)
// ABOUTME: Blocks until the terminal answers; there is no timeout

package screen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Position is a 1-based cursor location.
type Position struct {
	Col uint16
	Row uint16
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// ErrMalformedReport is wrapped by errors for cursor reports that cannot be
// parsed.
var ErrMalformedReport = errors.New("malformed cursor position report")

const (
	esc          = 0x1b
	reportFinal  = 'R'
	statusReport = "\x1b[6n"
)

// Pos asks the terminal where the cursor is. Pending output is flushed
// first so the reply reflects everything written so far.
//
// Bytes before the first ESC (typed-ahead input) are discarded. Reads that
// return no data are retried without limit, so a terminal that never answers
// blocks the caller forever.
// TODO: bound the wait once Device grows a deadline-capable read.
func (s *Screen) Pos() (Position, error) {
	if err := s.Flush(); err != nil {
		return Position{}, err
	}
	if err := s.Write(statusReport); err != nil {
		return Position{}, err
	}
	if err := s.Flush(); err != nil {
		return Position{}, err
	}

	var (
		report strings.Builder
		sawEsc bool
		buf    [1]byte
	)
	for {
		n, err := s.dev.Read(buf[:])
		if err != nil {
			return Position{}, fmt.Errorf("reading cursor position: %w", err)
		}
		if n == 0 {
			continue
		}
		b := buf[0]
		if !sawEsc {
			sawEsc = b == esc
			continue
		}
		if b == reportFinal {
			break
		}
		report.WriteByte(b)
	}

	return ParseReport(report.String())
}

// ParseReport parses the body of a cursor position report, the text between
// ESC and the final 'R', which has the form "[row;col".
func ParseReport(body string) (Position, error) {
	rowField, colField, ok := strings.Cut(body, ";")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q has no separator", ErrMalformedReport, body)
	}
	rowField, ok = strings.CutPrefix(rowField, "[")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q has no CSI bracket", ErrMalformedReport, body)
	}

	row, err := strconv.ParseUint(rowField, 10, 16)
	if err != nil {
		return Position{}, fmt.Errorf("%w: row %q: %w", ErrMalformedReport, rowField, err)
	}
	col, err := strconv.ParseUint(colField, 10, 16)
	if err != nil {
		return Position{}, fmt.Errorf("%w: column %q: %w", ErrMalformedReport, colField, err)
	}
	return Position{Col: uint16(col), Row: uint16(row)}, nil
}
