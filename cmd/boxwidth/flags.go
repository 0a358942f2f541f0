// ABOUTME: Root command flags and their layering over the loaded config
// ABOUTME: Only flags the user actually set override config file values

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/boxwidth/internal/config"
)

type cliArgs struct {
	tests         []string
	list          bool
	force         bool
	noColor       bool
	allowOverlong bool
	unicodeBox    bool
	sizeProvider  string
	theme         string
	configPath    string
	verbose       bool
	logFile       string
	device        string
}

func registerFlags(cmd *cobra.Command, a *cliArgs) {
	f := cmd.Flags()
	f.StringArrayVarP(&a.tests, "test", "t", nil, "only run the named width definition (repeatable)")
	f.BoolVar(&a.list, "list", false, "list width definitions and exit")
	f.BoolVar(&a.force, "force", false, "skip the interactive terminal check")
	f.BoolVar(&a.noColor, "no-color", false, "draw borders without colour")
	f.BoolVar(&a.allowOverlong, "allow-overlong", false, "allow phrases wider than the screen (pair with -t read_pos)")
	f.BoolVar(&a.unicodeBox, "unicode-box", false, "draw borders with box-drawing characters")
	f.StringVar(&a.sizeProvider, "size-provider", "", "how to read the screen size: ioctl or tput")
	f.StringVar(&a.theme, "theme", "", "colour theme name or YAML theme file")
	f.StringVar(&a.device, "device", "", "terminal device to draw on")
	_ = f.MarkHidden("device")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfig+" or $XDG_CONFIG_HOME/boxwidth/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")
}

// applyFlags overlays the flags that were set on the command line onto c.
func applyFlags(cmd *cobra.Command, a cliArgs, c *config.Config) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("test") {
		c.Tests = append([]string(nil), a.tests...)
	}
	if changed("no-color") {
		c.NoColor = a.noColor
	}
	if changed("allow-overlong") {
		c.AllowOverlong = a.allowOverlong
	}
	if changed("unicode-box") {
		c.UnicodeBox = a.unicodeBox
	}
	if changed("size-provider") {
		c.SizeProvider = a.sizeProvider
	}
	if changed("theme") {
		c.Theme = a.theme
	}
	if changed("verbose") {
		c.Verbose = a.verbose
	}
	if changed("log-file") {
		c.LogFile = a.logFile
	}
}
