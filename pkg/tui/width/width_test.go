// ABOUTME: Tests for the width strategies and the properties they must agree on
// ABOUTME: ASCII agreement, NFC bounds, emoji heuristics, fish overrides, and café counts

package width

import (
	"testing"
	"unicode/utf8"
)

const (
	cafeComposed   = "caf\u00e9"
	cafeDecomposed = "cafe\u0301"
	flagUS         = "\U0001F1FA\U0001F1F8"
	rainbowPhrase  = "\U0001F3F3\ufe0f\u200d\U0001F308 space communism"
)

func TestStrategies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    Func
		input string
		want  int
	}{
		{name: "byte_len café", fn: ByteLen, input: cafeComposed, want: 5},
		{name: "codepoints café", fn: Codepoints, input: cafeComposed, want: 4},
		{name: "graphemes café", fn: Graphemes, input: cafeComposed, want: 4},
		{name: "codepoints decomposed", fn: Codepoints, input: cafeDecomposed, want: 5},
		{name: "nfc_codepoints decomposed", fn: NFCCodepoints, input: cafeDecomposed, want: 4},
		{name: "graphemes decomposed", fn: Graphemes, input: cafeDecomposed, want: 4},
		{name: "unicode_width cjk", fn: UnicodeWidth, input: "中文", want: 4},
		{name: "unicode_width ambiguous is narrow", fn: UnicodeWidth, input: "αβ", want: 2},
		{name: "unicode_width combining", fn: UnicodeWidth, input: cafeDecomposed, want: 4},
		{name: "unicode_width lone vs16", fn: UnicodeWidth, input: "\ufe0f", want: 0},
		{name: "unicode_width lone vs15", fn: UnicodeWidth, input: "\ufe0e", want: 0},
		{name: "unicode_width heart with vs16", fn: UnicodeWidth, input: "\u2764\ufe0f", want: 1},
		{name: "unicode_width rainbow flag phrase", fn: UnicodeWidth, input: rainbowPhrase, want: 19},
		{name: "nfc_unicode_width rainbow flag phrase", fn: NFCUnicodeWidth, input: rainbowPhrase, want: 19},
		{name: "nfc_unicode_width decomposed", fn: NFCUnicodeWidth, input: cafeDecomposed, want: 4},
		{name: "graphemes flag", fn: Graphemes, input: flagUS, want: 1},
		{name: "termwiz flag", fn: TermwizIsh, input: flagUS, want: 2},
		{name: "termwiz skin tone", fn: TermwizIsh, input: "\U0001F44B\U0001F3FD", want: 2},
		{name: "termwiz plain text", fn: TermwizIsh, input: "box", want: 3},
		{name: "termwiz two flags", fn: TermwizIsh, input: flagUS + flagUS, want: 4},
		{name: "widechar_rec cjk", fn: WidecharRecommended, input: "中", want: 2},
		{name: "widechar_rec widened", fn: WidecharRecommended, input: "\u231a", want: 2},
		{name: "widechar_rec ambiguous", fn: WidecharRecommended, input: "\u2500", want: 1},
		{name: "widechar_rec private use", fn: WidecharRecommended, input: "\ue000", want: 1},
		{name: "widechar_rec combining", fn: WidecharRecommended, input: cafeDecomposed, want: 4},
		{name: "widechar_rec control", fn: WidecharRecommended, input: "a\x1bb", want: 2},
		{name: "fish vs16", fn: WidecharFish, input: "\ufe0f", want: 1},
		{name: "fish vs15", fn: WidecharFish, input: "\ufe0e", want: 0},
		{name: "fish hangul medial", fn: WidecharFish, input: "\u1161", want: 0},
		{name: "fish heart with vs16", fn: WidecharFish, input: "\u2764\ufe0f", want: 2},
		{name: "system control", fn: SystemWcwidth, input: "\x1b", want: 0},
		{name: "system ascii", fn: SystemWcwidth, input: "hello", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, got := tt.fn(tt.input); got != tt.want {
				t.Errorf("%s(%q) = %d, want %d", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestASCIIAgreement(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a", "hello world", "space communism", "~!@#$%^&*()_+{}|:<>?"}
	fns := map[string]Func{
		"byte_len":      ByteLen,
		"codepoints":    Codepoints,
		"graphemes":     Graphemes,
		"unicode_width": UnicodeWidth,
		"widechar_rec":  WidecharRecommended,
		"termwiz_ish":   TermwizIsh,
	}

	for _, in := range inputs {
		for name, fn := range fns {
			if _, got := fn(in); got != len(in) {
				t.Errorf("%s(%q) = %d, want %d", name, in, got, len(in))
			}
		}
	}
}

func TestNFCNeverIncreasesCodepoints(t *testing.T) {
	t.Parallel()

	inputs := []string{
		cafeComposed,
		cafeDecomposed,
		"각",
		"Å",
		"Å",
		"🏳️‍🌈 space communism",
	}
	for _, in := range inputs {
		_, nfc := NFCCodepoints(in)
		if cp := utf8.RuneCountInString(in); nfc > cp {
			t.Errorf("NFCCodepoints(%q) = %d exceeds %d codepoints", in, nfc, cp)
		}
	}
}

func TestNormalisingStrategiesReturnNFC(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]Func{
		"nfc_codepoints":    NFCCodepoints,
		"nfc_unicode_width": NFCUnicodeWidth,
		"termwiz_ish":       TermwizIsh,
	} {
		if text, _ := fn(cafeDecomposed); text != cafeComposed {
			t.Errorf("%s returned %q, want %q", name, text, cafeComposed)
		}
	}
	if text, _ := Codepoints(cafeDecomposed); text != cafeDecomposed {
		t.Errorf("Codepoints must not rewrite its input, got %q", text)
	}
}

func TestIsPlainASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain ascii", input: "hello world!", want: true},
		{name: "with escape", input: "hello\x1b[31m", want: false},
		{name: "with tab", input: "a\tb", want: false},
		{name: "delete", input: "a\x7f", want: false},
		{name: "empty", input: "", want: true},
		{name: "unicode", input: cafeComposed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isPlainASCII(tt.input); got != tt.want {
				t.Errorf("isPlainASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitLocaleIsStable(t *testing.T) {
	t.Parallel()

	first := InitLocale()
	if second := InitLocale(); second != first {
		t.Errorf("InitLocale changed from %q to %q", first, second)
	}
}
