// ABOUTME: Human-readable rendering of the effective configuration
// ABOUTME: Backs the "config" subcommand so users can see what a run will use

package config

import (
	"fmt"
	"strings"
)

// Explain renders the effective settings and the files they came from.
func Explain(c *Config, projectRoot string) string {
	if c == nil {
		c = Defaults()
	}

	var b strings.Builder

	b.WriteString("=== Files ===\n")
	fmt.Fprintf(&b, "  Global:  %s\n", GlobalConfigFile())
	fmt.Fprintf(&b, "  Project: %s\n", ProjectConfigFile(projectRoot))
	b.WriteString("\n")

	b.WriteString("=== Run ===\n")
	fmt.Fprintf(&b, "  Tests:         %s\n", listOrAll(c.Tests))
	fmt.Fprintf(&b, "  Phrases:       %s\n", listOrDefault(c.Phrases))
	fmt.Fprintf(&b, "  AllowOverlong: %v\n", c.AllowOverlong)
	b.WriteString("\n")

	b.WriteString("=== Terminal ===\n")
	fmt.Fprintf(&b, "  SizeProvider: %s\n", c.SizeProvider)
	fmt.Fprintf(&b, "  NoColor:      %v\n", c.NoColor)
	fmt.Fprintf(&b, "  UnicodeBox:   %v\n", c.UnicodeBox)
	fmt.Fprintf(&b, "  Theme:        %s\n", c.Theme)
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	fmt.Fprintf(&b, "  Verbose: %v\n", c.Verbose)
	if c.LogFile != "" {
		fmt.Fprintf(&b, "  LogFile: %s\n", c.LogFile)
	}

	return b.String()
}

func listOrAll(xs []string) string {
	if len(xs) == 0 {
		return "(all)"
	}
	return strings.Join(xs, ", ")
}

func listOrDefault(xs []string) string {
	if len(xs) == 0 {
		return "(default)"
	}
	return strings.Join(xs, ", ")
}
