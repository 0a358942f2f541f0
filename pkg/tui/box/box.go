// ABOUTME: Draws three-row bordered boxes around text at a screen position
// ABOUTME: Symmetric boxes take a precomputed width; measured boxes ask the terminal

// Package box renders the boxes boxwidth uses to expose width mistakes. A box
// whose right edge does not line up with its text was drawn with the wrong
// width.
package box

import (
	"fmt"
	"strings"

	"github.com/mauromedda/boxwidth/pkg/tui/screen"
)

// Glyphs is the set of border characters a box is drawn with.
type Glyphs struct {
	TopLeft, TopRight       string
	BottomLeft, BottomRight string
	Horizontal, Vertical    string
}

// ASCII makes errors easiest to count: every glyph is one byte and one cell.
var ASCII = Glyphs{
	TopLeft: "+", TopRight: "+",
	BottomLeft: "+", BottomRight: "+",
	Horizontal: "-", Vertical: "|",
}

// Unicode uses box-drawing characters.
var Unicode = Glyphs{
	TopLeft: "┌", TopRight: "┐",
	BottomLeft: "└", BottomRight: "┘",
	Horizontal: "─", Vertical: "│",
}

// Spec places a box: content row Y starting at column X, interior Width cells.
type Spec struct {
	X, Y  uint16
	Text  string
	Width int
}

// Renderer draws boxes onto a Screen.
type Renderer struct {
	scr    *screen.Screen
	glyphs Glyphs
	border screen.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGlyphs selects the border character set.
func WithGlyphs(g Glyphs) Option {
	return func(r *Renderer) { r.glyphs = g }
}

// WithBorderColor selects the border colour. It has no effect when the
// device has colour disabled.
func WithBorderColor(c screen.Color) Option {
	return func(r *Renderer) { r.border = c }
}

// New returns a Renderer with ASCII glyphs and red borders unless overridden.
func New(scr *screen.Screen, opts ...Option) *Renderer {
	r := &Renderer{scr: scr, glyphs: ASCII, border: screen.Red}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DrawSymmetric draws the top border one row above spec.Y, the content row at
// spec.Y, and the bottom border one row below. A failed write leaves the box
// partially drawn.
func (r *Renderer) DrawSymmetric(spec Spec) error {
	if spec.Width < 0 {
		return fmt.Errorf("box width %d is negative", spec.Width)
	}
	if err := r.top(spec.X, spec.Y, spec.Width); err != nil {
		return err
	}
	if err := r.content(spec.X, spec.Y, spec.Text); err != nil {
		return err
	}
	return r.bottom(spec.X, spec.Y, spec.Width)
}

// DrawMeasured writes the content row first and then asks the terminal where
// the cursor ended up. When the text wrapped onto another row, the closing
// glyph goes in the second-to-last column of the starting row, everything
// after it is cleared, and the width runs to the right edge. The borders are
// then drawn to match and the interior width is returned.
func (r *Renderer) DrawMeasured(x, y uint16, text string) (int, error) {
	if x < 1 {
		x = 1
	}
	if err := r.content(x, y, text); err != nil {
		return 0, err
	}
	end, err := r.scr.Pos()
	if err != nil {
		return 0, fmt.Errorf("measuring %q: %w", text, err)
	}

	var span int
	if end.Row != max(y, 1) {
		cols, _ := r.scr.Size()
		if err := r.scr.MoveTo(cols-1, y); err != nil {
			return 0, err
		}
		if err := r.scr.WriteColored(r.border, r.glyphs.Vertical); err != nil {
			return 0, err
		}
		if err := r.scr.Clear(screen.ClearToEndOfScreen); err != nil {
			return 0, err
		}
		span = int(cols) - int(x)
	} else {
		span = int(end.Col) - int(x)
	}
	w := max(span-2, 0)

	if err := r.top(x, y, w); err != nil {
		return w, err
	}
	return w, r.bottom(x, y, w)
}

func (r *Renderer) top(x, y uint16, w int) error {
	if err := r.scr.MoveTo(x, above(y)); err != nil {
		return err
	}
	return r.scr.WriteColored(r.border, r.edge(r.glyphs.TopLeft, r.glyphs.TopRight, w))
}

func (r *Renderer) content(x, y uint16, text string) error {
	if err := r.scr.MoveTo(x, y); err != nil {
		return err
	}
	if err := r.scr.WriteColored(r.border, r.glyphs.Vertical); err != nil {
		return err
	}
	if err := r.scr.Write(text); err != nil {
		return err
	}
	return r.scr.WriteColored(r.border, r.glyphs.Vertical)
}

func (r *Renderer) bottom(x, y uint16, w int) error {
	if err := r.scr.MoveTo(x, y+1); err != nil {
		return err
	}
	return r.scr.WriteColored(r.border, r.edge(r.glyphs.BottomLeft, r.glyphs.BottomRight, w))
}

func above(y uint16) uint16 {
	if y > 1 {
		return y - 1
	}
	return 1
}

func (r *Renderer) edge(left, right string, w int) string {
	return left + strings.Repeat(r.glyphs.Horizontal, w) + right
}
