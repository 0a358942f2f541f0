// ABOUTME: Fuzzy name matching over sahilm/fuzzy for "did you mean" hints
// ABOUTME: Ranks candidates best-first and trims suggestions to a caller limit

package fuzzy

import "github.com/sahilm/fuzzy"

// Source is any indexed list of candidate strings.
type Source = fuzzy.Source

// Match is one ranked candidate.
type Match struct {
	Str   string
	Index int
	Score int
}

// Rank matches pattern against every candidate in src, best score first.
func Rank(pattern string, src Source) []Match {
	results := fuzzy.FindFrom(pattern, src)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns up to limit candidate strings that fuzzily match pattern.
// An empty pattern suggests nothing.
func Suggest(pattern string, src Source, limit int) []string {
	if pattern == "" || limit <= 0 {
		return nil
	}
	ranked := Rank(pattern, src)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = m.Str
	}
	return out
}

// Strings adapts a plain slice to Source.
type Strings []string

func (s Strings) String(i int) string { return s[i] }
func (s Strings) Len() int            { return len(s) }
