// ABOUTME: Port of the widecharwidth classification: fixed widths plus special classes
// ABOUTME: Callers decide how classes such as ambiguous or combining map to cells

// Package widechar classifies code points the way the widecharwidth tables do:
// each rune is either a fixed cell width (1 or 2) or one of a handful of
// special classes whose width depends on the caller's policy.
package widechar

import (
	"fmt"
	"unicode"

	"golang.org/x/text/width"
)

// Width is a fixed width when non-negative, otherwise a special class.
type Width int

// Special classes. The values match the widecharwidth C header.
const (
	Nonprint   Width = -1 // controls, format characters, separators, surrogates
	Combining  Width = -2 // nonspacing, spacing, and enclosing marks
	Ambiguous  Width = -3 // East Asian Ambiguous
	PrivateUse Width = -4
	Unassigned Width = -5
	WidenedIn9 Width = -6 // emoji that became wide in Unicode 9
)

// Fixed returns the cell width and true when w is not a special class.
func (w Width) Fixed() (int, bool) {
	if w >= 0 {
		return int(w), true
	}
	return 0, false
}

func (w Width) String() string {
	switch w {
	case Nonprint:
		return "nonprint"
	case Combining:
		return "combining"
	case Ambiguous:
		return "ambiguous"
	case PrivateUse:
		return "private-use"
	case Unassigned:
		return "unassigned"
	case WidenedIn9:
		return "widened-in-9"
	}
	return fmt.Sprintf("width %d", int(w))
}

// Lookup classifies r. Checks run in the order of the original tables so that
// a rune belonging to several sets gets the first class that matches.
func Lookup(r rune) Width {
	if r >= 0x20 && r < 0x7f {
		return 1
	}
	switch {
	case unicode.Is(unicode.Co, r):
		return PrivateUse
	case unicode.In(r, nonprint...):
		return Nonprint
	case unicode.In(r, combining...):
		return Combining
	case unicode.Is(widenedIn9, r):
		return WidenedIn9
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		return Ambiguous
	}

	if !unicode.In(r, assigned...) {
		return Unassigned
	}
	return 1
}
