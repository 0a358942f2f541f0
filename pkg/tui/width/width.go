// ABOUTME: Width strategies: competing answers to "how many cells does this string take"
// ABOUTME: Each Func returns the text to box (possibly NFC-normalised) and its cell count

// Package width implements the string-width definitions that boxwidth compares.
// None of them is correct for every terminal; drawing a box with each one makes
// the disagreements visible.
package width

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/boxwidth/pkg/tui/width/widechar"
)

// Func measures s. The returned text is what should be drawn inside the box;
// strategies that normalise return the normalised form.
type Func func(s string) (text string, cells int)

// narrow treats East Asian ambiguous runes as one cell.
var narrow = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// ByteLen counts UTF-8 bytes.
func ByteLen(s string) (string, int) {
	return s, len(s)
}

// Codepoints counts Unicode scalar values.
func Codepoints(s string) (string, int) {
	return s, utf8.RuneCountInString(s)
}

// NFCCodepoints counts scalar values after NFC normalisation.
func NFCCodepoints(s string) (string, int) {
	n := norm.NFC.String(s)
	return n, utf8.RuneCountInString(n)
}

// Graphemes counts extended grapheme clusters.
func Graphemes(s string) (string, int) {
	return s, uniseg.GraphemeClusterCount(s)
}

// UnicodeWidth sums per-rune widths from the East Asian Width tables.
func UnicodeWidth(s string) (string, int) {
	return s, runesWidth(s)
}

// NFCUnicodeWidth normalises to NFC, then behaves like UnicodeWidth.
func NFCUnicodeWidth(s string) (string, int) {
	n := norm.NFC.String(s)
	return n, runesWidth(n)
}

// SystemWcwidth sums the C library's wcwidth for every rune, counting
// non-printable runes as zero. The process locale is initialised on first use.
func SystemWcwidth(s string) (string, int) {
	if isPlainASCII(s) {
		return s, len(s)
	}
	if w, ok := wcwidthCache.get(s); ok {
		return s, w
	}
	InitLocale()
	w := 0
	for _, r := range s {
		w += systemRuneWidth(r)
	}
	wcwidthCache.put(s, w)
	return s, w
}

// WidecharRecommended sums widecharwidth classes using the mapping suggested
// by the widecharwidth project.
func WidecharRecommended(s string) (string, int) {
	w := 0
	for _, r := range s {
		w += recommended(widechar.Lookup(r))
	}
	return s, w
}

// WidecharFish sums widecharwidth classes the way the fish shell does:
// emoji presentation selectors and Hangul medial vowels have fixed widths,
// and the classes widecharwidth leaves open defer to the system wcwidth.
func WidecharFish(s string) (string, int) {
	w := 0
	for _, r := range s {
		w += fishRuneWidth(r)
	}
	return s, w
}

// TermwizIsh normalises to NFC and walks grapheme clusters. A cluster that
// contains an emoji modifier, an emoji modifier base, or a regional indicator
// is two cells; anything else falls back to UnicodeWidth.
func TermwizIsh(s string) (string, int) {
	n := norm.NFC.String(s)
	w := 0
	rest := n
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if isEmojiSequence(cluster) {
			w += 2
			continue
		}
		w += runesWidth(cluster)
	}
	return n, w
}

func runesWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	for _, r := range s {
		w += tableRuneWidth(r)
	}
	return w
}

// tableRuneWidth is the East Asian Width of r, with nonspacing and enclosing
// marks (variation selectors among them) taking no cells.
func tableRuneWidth(r rune) int {
	if unicode.In(r, unicode.Mn, unicode.Me) {
		return 0
	}
	return narrow.RuneWidth(r)
}

func recommended(c widechar.Width) int {
	if n, ok := c.Fixed(); ok {
		return n
	}
	switch c {
	case widechar.Ambiguous, widechar.PrivateUse:
		return 1
	case widechar.WidenedIn9:
		return 2
	}
	// Nonprint, combining and unassigned take no cells.
	return 0
}

func fishRuneWidth(r rune) int {
	switch {
	case r == 0xfe0f:
		return 1
	case r == 0xfe0e:
		return 0
	case r >= 0x1160 && r <= 0x11ff:
		return 0
	}
	c := widechar.Lookup(r)
	switch c {
	case widechar.Nonprint, widechar.Combining, widechar.Unassigned:
		InitLocale()
		return systemRuneWidth(r)
	}
	return recommended(c)
}

func systemRuneWidth(r rune) int {
	if n := platformWcwidth(r); n > 0 {
		return n
	}
	return 0
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E),
// where every strategy agrees on one cell per byte.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
