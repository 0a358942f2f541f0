// ABOUTME: Run loop drawing every selected strategy's box for every phrase
// ABOUTME: Rows of boxes stack downward, scrolling when the screen runs out

// Package board lays out the comparison: one labelled band per strategy,
// with a box per phrase, so that mismatched borders can be compared by eye.
package board

import (
	"fmt"

	"github.com/mauromedda/boxwidth/internal/log"
	"github.com/mauromedda/boxwidth/internal/strategy"
	"github.com/mauromedda/boxwidth/pkg/tui/box"
	"github.com/mauromedda/boxwidth/pkg/tui/screen"
	"github.com/mauromedda/boxwidth/pkg/tui/theme"
)

// bandHeight is the label row plus the three rows of a box.
const bandHeight = 4

// Options configures a run.
type Options struct {
	Strategies    []strategy.Strategy
	Phrases       []string
	AllowOverlong bool
	Theme         *theme.Theme
	Glyphs        box.Glyphs
}

// Entry records the width one strategy gave one phrase.
type Entry struct {
	Strategy string
	Phrase   string
	Width    int
}

// Run clears the screen and draws every (phrase row, strategy) band. It
// returns the widths in drawing order. Drawing stops at the first error;
// whatever was already drawn stays on screen.
func Run(scr *screen.Screen, opts Options) ([]Entry, error) {
	th := opts.Theme
	if th == nil {
		th = theme.Current()
	}
	glyphs := opts.Glyphs
	if glyphs == (box.Glyphs{}) {
		glyphs = box.ASCII
	}

	cols, rows := scr.Size()
	packed, err := Pack(PhrasesOrDefault(opts.Phrases), cols, opts.AllowOverlong)
	if err != nil {
		return nil, err
	}
	log.Debug("screen %dx%d, %d phrase rows, %d strategies", cols, rows, len(packed), len(opts.Strategies))

	r := box.New(scr, box.WithGlyphs(glyphs), box.WithBorderColor(th.Border))

	if err := scr.Clear(screen.ClearScreen); err != nil {
		return nil, err
	}
	if err := scr.MoveTo(1, 1); err != nil {
		return nil, err
	}

	var entries []Entry
	y := uint16(1)
	for _, row := range packed {
		for _, s := range opts.Strategies {
			if err := scr.MoveTo(1, y); err != nil {
				return entries, err
			}
			if int(y)+bandHeight >= int(rows) {
				if err := scr.Scroll(bandHeight); err != nil {
					return entries, err
				}
				y = max(y, bandHeight+1) - bandHeight
				if err := scr.MoveTo(1, y); err != nil {
					return entries, err
				}
			}
			if err := scr.WriteColored(th.Label, s.Name); err != nil {
				return entries, err
			}
			y++

			x := uint16(1)
			for _, phrase := range row {
				w, err := draw(r, s, x, y+1, phrase)
				if err != nil {
					return entries, fmt.Errorf("drawing %s box for %q: %w", s.Name, phrase, err)
				}
				log.Debug("%s: %q is %d cells", s.Name, phrase, w)
				entries = append(entries, Entry{Strategy: s.Name, Phrase: phrase, Width: w})
				x += uint16(len(phrase)) + 5
			}
			y += bandHeight - 1
		}
	}
	return entries, scr.Flush()
}

func draw(r *box.Renderer, s strategy.Strategy, x, y uint16, phrase string) (int, error) {
	if s.Measured {
		return r.DrawMeasured(x, y, phrase)
	}
	text, w := s.Fn(phrase)
	return w, r.DrawSymmetric(box.Spec{X: x, Y: y, Text: text, Width: w})
}
