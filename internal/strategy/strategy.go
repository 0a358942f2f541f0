// ABOUTME: Ordered registry of width strategies and the name filter the CLI applies
// ABOUTME: Filters are normalised before matching; misses produce fuzzy suggestions

// Package strategy holds the fixed, ordered list of width strategies that
// boxwidth draws, and the name-based selection over it.
package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/boxwidth/internal/log"
	"github.com/mauromedda/boxwidth/pkg/tui/fuzzy"
	"github.com/mauromedda/boxwidth/pkg/tui/width"
)

// ErrNoMatch means none of the requested names matched a strategy.
var ErrNoMatch = errors.New("no strategy matches")

// Strategy is one named width definition. A Measured strategy has no Fn; its
// width comes from asking the terminal where the cursor ended up.
type Strategy struct {
	Name        string
	Description string
	Measured    bool
	Fn          width.Func
}

// ReadPos is the name of the measured strategy.
const ReadPos = "read_pos"

type registry []Strategy

func (r registry) String(i int) string { return r[i].Name }
func (r registry) Len() int            { return len(r) }

var strategies = registry{
	{Name: "byte_len", Description: "UTF-8 byte count", Fn: width.ByteLen},
	{Name: "codepoints", Description: "Unicode scalar values", Fn: width.Codepoints},
	{Name: "nfc_codepoints", Description: "scalar values after NFC", Fn: width.NFCCodepoints},
	{Name: "graphemes", Description: "extended grapheme clusters", Fn: width.Graphemes},
	{Name: "unicode_width", Description: "East Asian Width per rune, ambiguous narrow", Fn: width.UnicodeWidth},
	{Name: "nfc_unicode_width", Description: "unicode_width after NFC", Fn: width.NFCUnicodeWidth},
	{Name: "system_wcwidth", Description: "libc wcwidth per rune", Fn: width.SystemWcwidth},
	{Name: "widecharwidth_rec", Description: "widecharwidth, recommended mapping", Fn: width.WidecharRecommended},
	{Name: "widecharwidth_fish", Description: "widecharwidth as the fish shell maps it", Fn: width.WidecharFish},
	{Name: "termwiz_ish", Description: "NFC graphemes, emoji sequences are two cells", Fn: width.TermwizIsh},
	{Name: ReadPos, Description: "ask the terminal where the cursor ended up", Measured: true},
}

// All returns every strategy in display order.
func All() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	return out
}

// Names returns the strategy names in display order.
func Names() []string {
	out := make([]string, len(strategies))
	for i, s := range strategies {
		out[i] = s.Name
	}
	return out
}

// Lookup finds a strategy by normalised name.
func Lookup(name string) (Strategy, bool) {
	name = Normalize(name)
	for _, s := range strategies {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// Normalize trims, lowercases, and turns dashes into underscores so that
// "Unicode-Width" selects unicode_width.
func Normalize(filter string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(filter)), "-", "_")
}

// Select returns the strategies named by filters, in registry order and
// without duplicates. No filters selects everything. When no filter matches
// the error wraps ErrNoMatch; filters that miss alongside hits are logged.
func Select(filters []string) ([]Strategy, error) {
	if len(filters) == 0 {
		return All(), nil
	}

	want := make(map[string]bool, len(filters))
	for _, f := range filters {
		want[Normalize(f)] = true
	}

	var out []Strategy
	for _, s := range strategies {
		if want[s.Name] {
			out = append(out, s)
			delete(want, s.Name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, strings.Join(filters, ", "))
	}
	for name := range want {
		log.Warn("unknown strategy %q ignored", name)
	}
	return out, nil
}

// Unmatched returns the filters, as given, that do not name a strategy.
func Unmatched(filters []string) []string {
	var out []string
	for _, f := range filters {
		if _, ok := Lookup(f); !ok {
			out = append(out, f)
		}
	}
	return out
}

// Suggest returns up to three strategy names close to filter.
func Suggest(filter string) []string {
	return fuzzy.Suggest(Normalize(filter), strategies, 3)
}
