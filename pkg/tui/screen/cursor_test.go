// ABOUTME: Tests for the cursor position protocol and report parsing
// ABOUTME: Covers typed-ahead noise, empty reads, read failures, and move/query round trips

package screen

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mauromedda/boxwidth/pkg/tui/terminal"
)

func TestParseReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    Position
		wantErr error
	}{
		{name: "typical", body: "[12;40", want: Position{Col: 40, Row: 12}},
		{name: "origin", body: "[1;1", want: Position{Col: 1, Row: 1}},
		{name: "no separator", body: "[12", wantErr: ErrMalformedReport},
		{name: "no bracket", body: "12;40", wantErr: ErrMalformedReport},
		{name: "letters in row", body: "[a;1", wantErr: strconv.ErrSyntax},
		{name: "empty column", body: "[3;", wantErr: strconv.ErrSyntax},
		{name: "row overflow", body: "[70000;1", wantErr: strconv.ErrRange},
		{name: "private marker", body: "[?1;2", wantErr: ErrMalformedReport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseReport(tt.body)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseReport(%q) error = %v, want %v", tt.body, err, tt.wantErr)
				}
				if !errors.Is(err, ErrMalformedReport) {
					t.Errorf("every parse failure should wrap ErrMalformedReport, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReport(%q) unexpected error: %v", tt.body, err)
			}
			if got != tt.want {
				t.Errorf("ParseReport(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestPos_FlushesAndRequests(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)
	scr := New(vt)

	if err := scr.MoveTo(7, 3); err != nil {
		t.Fatal(err)
	}
	pos, err := scr.Pos()
	if err != nil {
		t.Fatalf("Pos() unexpected error: %v", err)
	}
	if pos != (Position{Col: 7, Row: 3}) {
		t.Errorf("Pos() = %v, want (7, 3)", pos)
	}
	if got, want := vt.Output(), "\x1b[3;7H\x1b[6n"; got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
	if vt.Flushes() < 2 {
		t.Errorf("Pos must flush before and after the request, got %d flushes", vt.Flushes())
	}
}

func TestPos_SkipsNoiseBeforeEscape(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)
	vt.QueueInput([]byte("typed ahead\x1b[9;33R"))

	pos, err := New(vt).Pos()
	if err != nil {
		t.Fatalf("Pos() unexpected error: %v", err)
	}
	if pos != (Position{Col: 33, Row: 9}) {
		t.Errorf("Pos() = %v, want (33, 9)", pos)
	}
}

func TestPos_RetriesEmptyReads(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)
	vt.SetEmptyReads(50)

	pos, err := New(vt).Pos()
	if err != nil {
		t.Fatalf("Pos() unexpected error: %v", err)
	}
	if pos != (Position{Col: 1, Row: 1}) {
		t.Errorf("Pos() = %v, want (1, 1)", pos)
	}
}

func TestPos_ReadFailure(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)
	eio := errors.New("input/output error")
	vt.FailReads(eio)

	if _, err := New(vt).Pos(); !errors.Is(err, eio) {
		t.Fatalf("Pos() error = %v, want %v", err, eio)
	}
}

func TestPos_MalformedReply(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)
	// A reply queued ahead of ours terminates the loop first.
	vt.QueueInput([]byte("\x1b[x;yR"))

	if _, err := New(vt).Pos(); !errors.Is(err, ErrMalformedReport) {
		t.Fatalf("Pos() error = %v, want ErrMalformedReport", err)
	}
}

func TestMoveToThenPos_RoundTrip(t *testing.T) {
	t.Parallel()

	const cols, rows = 40, 12
	vt := terminal.NewVirtualTerminal(cols, rows)
	scr := New(vt)

	for y := uint16(1); y < rows; y++ {
		for x := uint16(1); x < cols; x++ {
			if err := scr.MoveTo(x, y); err != nil {
				t.Fatal(err)
			}
			pos, err := scr.Pos()
			if err != nil {
				t.Fatalf("Pos() after MoveTo(%d, %d): %v", x, y, err)
			}
			if pos.Col != x || pos.Row != y {
				t.Fatalf("MoveTo(%d, %d) then Pos() = %v", x, y, pos)
			}
		}
	}
}
