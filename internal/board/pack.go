// ABOUTME: Greedy packing of phrases into rows that fit the screen width
// ABOUTME: Widths here are byte lengths, matching the spacing the run loop uses

package board

import (
	"errors"
	"fmt"
)

// DefaultPhrase is drawn when the user gives none. It mixes a ZWJ emoji
// sequence with plain ASCII, which is where most width definitions disagree.
const DefaultPhrase = "🏳️‍🌈 space communism"

// ErrOverlong means a phrase's box is wider than the screen.
var ErrOverlong = errors.New("phrase wider than the screen")

// Row is a set of phrases drawn side by side.
type Row []string

// Pack splits phrases into rows. A new row starts when adding the next phrase
// would reach the right edge of a non-empty row; every phrase then claims its
// byte length plus four columns. Unless allowOverlong is set, a phrase whose
// box cannot fit on an empty row is rejected.
func Pack(phrases []string, cols uint16, allowOverlong bool) ([]Row, error) {
	var (
		rows    []Row
		cur     Row
		running int
	)
	for _, p := range phrases {
		if !allowOverlong && len(p)+2 > int(cols) {
			return nil, fmt.Errorf("%w: %q needs %d columns, screen has %d", ErrOverlong, p, len(p)+2, cols)
		}
		if running+len(p)+5 >= int(cols) && len(cur) > 0 {
			rows = append(rows, cur)
			cur, running = nil, 0
		}
		running += len(p) + 4
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows, nil
}

// PhrasesOrDefault returns phrases, or the default phrase when there are none.
func PhrasesOrDefault(phrases []string) []string {
	if len(phrases) == 0 {
		return []string{DefaultPhrase}
	}
	return phrases
}
