// ABOUTME: Pure-Go stand-in for the libc locale and wcwidth when cgo is off
// ABOUTME: Control characters report -1 like wcwidth; everything else uses the narrow tables

//go:build !cgo || !unix

package width

import "unicode"

// InitLocale is a no-op without cgo; the tables are locale independent.
func InitLocale() string {
	return "C.UTF-8"
}

func platformWcwidth(r rune) int {
	if r == 0 {
		return 0
	}
	if unicode.IsControl(r) {
		return -1
	}
	return narrow.RuneWidth(r)
}
