// ABOUTME: Theme pairs a border colour with a strategy-label colour
// ABOUTME: Colours are the eight standard SGR foregrounds from the screen package

package theme

import "github.com/mauromedda/boxwidth/pkg/tui/screen"

// Theme holds the colours boxwidth draws with.
type Theme struct {
	Name   string
	Border screen.Color
	Label  screen.Color
}

// Default returns the theme the tool has always used: red boxes, yellow labels.
func Default() *Theme {
	return &Theme{Name: "default", Border: screen.Red, Label: screen.Yellow}
}
