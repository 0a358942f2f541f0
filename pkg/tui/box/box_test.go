// ABOUTME: Tests for symmetric and measured box drawing against a virtual terminal
// ABOUTME: Checks exact escape output, glyph sets, colour, wrap handling, and errors

package box

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/boxwidth/pkg/tui/screen"
	"github.com/mauromedda/boxwidth/pkg/tui/terminal"
)

func TestDrawSymmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []Option
		color bool
		spec  Spec
		want  string
	}{
		{
			name: "ascii",
			spec: Spec{X: 3, Y: 5, Text: "abc", Width: 3},
			want: "\x1b[4;3H+---+\x1b[5;3H|abc|\x1b[6;3H+---+",
		},
		{
			name: "too narrow shows the mistake",
			spec: Spec{X: 1, Y: 2, Text: "caf\u00e9", Width: 5},
			want: "\x1b[1;1H+-----+\x1b[2;1H|caf\u00e9|\x1b[3;1H+-----+",
		},
		{
			name: "unicode glyphs",
			opts: []Option{WithGlyphs(Unicode)},
			spec: Spec{X: 2, Y: 3, Text: "ok", Width: 2},
			want: "\x1b[2;2H┌──┐\x1b[3;2H│ok│\x1b[4;2H└──┘",
		},
		{
			name: "empty text",
			spec: Spec{X: 1, Y: 2, Width: 0},
			want: "\x1b[1;1H++\x1b[2;1H||\x1b[3;1H++",
		},
		{
			name:  "coloured border",
			opts:  []Option{WithBorderColor(screen.Blue)},
			color: true,
			spec:  Spec{X: 1, Y: 2, Text: "x", Width: 1},
			want: "\x1b[1;1H\x1b[34m+-+\x1b[m" +
				"\x1b[2;1H\x1b[34m|\x1b[mx\x1b[34m|\x1b[m" +
				"\x1b[3;1H\x1b[34m+-+\x1b[m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := terminal.NewVirtualTerminal(80, 24)
			vt.SetColor(tt.color)

			if err := New(screen.New(vt), tt.opts...).DrawSymmetric(tt.spec); err != nil {
				t.Fatalf("DrawSymmetric: %v", err)
			}
			if got := vt.Output(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawSymmetric_TopRowClamps(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)

	if err := New(screen.New(vt)).DrawSymmetric(Spec{X: 1, Y: 1, Text: "a", Width: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(vt.Output(), "\x1b[1;1H+-+") {
		t.Errorf("top border should clamp to row 1, got %q", vt.Output())
	}
}

func TestDrawSymmetric_NegativeWidth(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)

	if err := New(screen.New(vt)).DrawSymmetric(Spec{X: 1, Y: 2, Width: -1}); err == nil {
		t.Fatal("expected an error for negative width")
	}
	if vt.Output() != "" {
		t.Errorf("nothing should be drawn, got %q", vt.Output())
	}
}

func TestDrawMeasured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		x, y      uint16
		text      string
		wantWidth int
		wantTail  string
	}{
		{
			name: "ascii", x: 1, y: 2, text: "hello", wantWidth: 5,
			wantTail: "\x1b[1;1H+-----+\x1b[3;1H+-----+",
		},
		{
			name: "accented", x: 4, y: 3, text: "café", wantWidth: 4,
			wantTail: "\x1b[2;4H+----+\x1b[4;4H+----+",
		},
		{
			name: "flag is two cells", x: 1, y: 2, text: "\U0001F1FA\U0001F1F8", wantWidth: 2,
			wantTail: "\x1b[1;1H+--+\x1b[3;1H+--+",
		},
		{
			name: "empty", x: 1, y: 2, text: "", wantWidth: 0,
			wantTail: "\x1b[1;1H++\x1b[3;1H++",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := terminal.NewVirtualTerminal(80, 24)

			w, err := New(screen.New(vt)).DrawMeasured(tt.x, tt.y, tt.text)
			if err != nil {
				t.Fatalf("DrawMeasured: %v", err)
			}
			if w != tt.wantWidth {
				t.Errorf("width = %d, want %d", w, tt.wantWidth)
			}
			if !strings.HasSuffix(vt.Output(), "\x1b[6n"+tt.wantTail) {
				t.Errorf("output = %q, want borders %q after the query", vt.Output(), tt.wantTail)
			}
		})
	}
}

func TestDrawMeasured_Wrap(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(10, 6)

	w, err := New(screen.New(vt)).DrawMeasured(5, 2, "abcdefghij")
	if err != nil {
		t.Fatalf("DrawMeasured: %v", err)
	}
	// The span runs from column 5 to the right edge: five cells minus two borders.
	if w != 3 {
		t.Errorf("width = %d, want 3", w)
	}
	want := "\x1b[2;5H|abcdefghij|\x1b[6n" +
		"\x1b[2;9H|\x1b[0J" +
		"\x1b[1;5H+---+\x1b[3;5H+---+"
	if got := vt.Output(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDrawMeasured_NarrowScreenSaturates(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(4, 6)

	w, err := New(screen.New(vt)).DrawMeasured(4, 2, "wrapped")
	if err != nil {
		t.Fatalf("DrawMeasured: %v", err)
	}
	if w != 0 {
		t.Errorf("width = %d, want 0", w)
	}
}

func TestDrawMeasured_QueryFailure(t *testing.T) {
	t.Parallel()
	vt := terminal.NewVirtualTerminal(80, 24)
	eio := errors.New("input/output error")
	vt.FailReads(eio)

	if _, err := New(screen.New(vt)).DrawMeasured(1, 2, "x"); !errors.Is(err, eio) {
		t.Fatalf("error = %v, want %v", err, eio)
	}
	if strings.Contains(vt.Output(), "+") {
		t.Errorf("borders drawn after a failed query: %q", vt.Output())
	}
}
