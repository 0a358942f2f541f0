// ABOUTME: Renders the --list output: every width definition with a short description
// ABOUTME: Styled with lipgloss, which drops colour when the writer is not a terminal

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/boxwidth/internal/strategy"
	"github.com/mauromedda/boxwidth/pkg/tui/theme"
)

func printList(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	th := theme.Current()

	nameWidth := 0
	for _, n := range strategy.Names() {
		nameWidth = max(nameWidth, len(n))
	}
	name := r.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(int(th.Label)))).
		Width(nameWidth + 2)
	desc := r.NewStyle().Faint(true)
	measured := r.NewStyle().Italic(true)

	for _, s := range strategy.All() {
		line := "- " + name.Render(s.Name) + desc.Render(s.Description)
		if s.Measured {
			line += " " + measured.Render("(needs a live terminal)")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
