// ABOUTME: CLI entry point for boxwidth: draws boxes around text with competing width rules
// ABOUTME: Builds the cobra command tree and maps errors to exit codes

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/boxwidth/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitError carries a process exit code. Its message, when non-empty, has
// not been printed yet.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("working directory unavailable, skipping project config: %v", err)
	}
	e := env{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		getenv:      os.Getenv,
		interactive: nil,
		cwd:         cwd,
	}

	err = newRootCommand(e).Execute()
	if err == nil {
		return
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(os.Stderr, ee.msg)
		}
		os.Exit(ee.code)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func newRootCommand(e env) *cobra.Command {
	var args cliArgs

	root := &cobra.Command{
		Use:   "boxwidth [flags] [phrase...]",
		Short: "Draw boxes around text to compare string width definitions",
		Long: `boxwidth draws a box around each phrase once per width definition.
A box whose right edge does not meet the text was sized with the wrong width
for this terminal. The read_pos definition asks the terminal itself and is
the reference the others should match.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, phrases []string) error {
			return run(cmd, e, args, phrases)
		},
	}
	registerFlags(root, &args)

	root.AddCommand(configCmd(e, &args))
	root.AddCommand(versionCmd(e))
	return root
}

func versionCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(e.stdout, "boxwidth %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
