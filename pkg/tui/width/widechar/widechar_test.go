// ABOUTME: Tests for widecharwidth classification across every class
// ABOUTME: Representative runes per class plus table sanity checks

package widechar

import (
	"testing"
	"unicode"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want Width
	}{
		{name: "ascii letter", r: 'a', want: 1},
		{name: "ascii space", r: ' ', want: 1},
		{name: "nul", r: 0, want: Nonprint},
		{name: "escape", r: 0x1b, want: Nonprint},
		{name: "delete", r: 0x7f, want: Nonprint},
		{name: "c1 control", r: 0x85, want: Nonprint},
		{name: "soft hyphen", r: 0xad, want: Nonprint},
		{name: "zero width joiner", r: 0x200d, want: Nonprint},
		{name: "line separator", r: 0x2028, want: Nonprint},
		{name: "combining acute", r: 0x301, want: Combining},
		{name: "variation selector 16", r: 0xfe0f, want: Combining},
		{name: "devanagari vowel sign", r: 0x93e, want: Combining},
		{name: "enclosing keycap", r: 0x20e3, want: Combining},
		{name: "private use", r: 0xe000, want: PrivateUse},
		{name: "supplementary private use", r: 0xf0000, want: PrivateUse},
		{name: "watch emoji", r: 0x231a, want: WidenedIn9},
		{name: "rainbow", r: 0x1f308, want: WidenedIn9},
		{name: "cjk ideograph", r: 0x4e2d, want: 2},
		{name: "hiragana", r: 0x3042, want: 2},
		{name: "fullwidth A", r: 0xff21, want: 2},
		{name: "hangul syllable", r: 0xac00, want: 2},
		{name: "emoji added after 9", r: 0x1f6f7, want: 2},
		{name: "greek alpha ambiguous", r: 0x3b1, want: Ambiguous},
		{name: "box drawing ambiguous", r: 0x2500, want: Ambiguous},
		{name: "hebrew alef", r: 0x5d0, want: 1},
		{name: "hangul jungseong", r: 0x1161, want: 1},
		{name: "regional indicator", r: 0x1f1fa, want: 1},
		{name: "noncharacter", r: 0xfffe, want: Unassigned},
		{name: "unassigned plane 14", r: 0xe0080, want: Unassigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Lookup(tt.r); got != tt.want {
				t.Errorf("Lookup(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestWidth_Fixed(t *testing.T) {
	t.Parallel()

	if n, ok := Width(2).Fixed(); !ok || n != 2 {
		t.Errorf("Width(2).Fixed() = (%d, %v), want (2, true)", n, ok)
	}
	for _, w := range []Width{Nonprint, Combining, Ambiguous, PrivateUse, Unassigned, WidenedIn9} {
		if _, ok := w.Fixed(); ok {
			t.Errorf("%v.Fixed() reported a fixed width", w)
		}
		if w.String() == "" {
			t.Errorf("Width(%d) has no name", int(w))
		}
	}
}

func TestWidenedTableHoldsSymbols(t *testing.T) {
	t.Parallel()

	// Every widened rune is an assigned, non-combining symbol.
	for _, rng := range widenedIn9.R16 {
		for r := rune(rng.Lo); r <= rune(rng.Hi); r++ {
			if !unicode.Is(unicode.So, r) && !unicode.Is(unicode.Sm, r) && !unicode.Is(unicode.Po, r) {
				t.Errorf("%U in widened table is not a symbol", r)
			}
		}
	}
}
