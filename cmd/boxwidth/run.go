// ABOUTME: The root command's work: load config, pick strategies, draw on the terminal
// ABOUTME: Terminal state is restored before the trailing newline is printed

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/boxwidth/internal/board"
	"github.com/mauromedda/boxwidth/internal/config"
	"github.com/mauromedda/boxwidth/internal/log"
	"github.com/mauromedda/boxwidth/internal/strategy"
	"github.com/mauromedda/boxwidth/pkg/tui/box"
	"github.com/mauromedda/boxwidth/pkg/tui/screen"
	"github.com/mauromedda/boxwidth/pkg/tui/terminal"
	"github.com/mauromedda/boxwidth/pkg/tui/theme"
	"github.com/mauromedda/boxwidth/pkg/tui/width"
)

// env is the process surroundings run depends on.
type env struct {
	stdout      io.Writer
	stderr      io.Writer
	getenv      func(string) string
	interactive func() bool // nil means terminal.IsInteractive
	cwd         string
}

func (e env) isInteractive() bool {
	if e.interactive != nil {
		return e.interactive()
	}
	return terminal.IsInteractive(e.getenv)
}

func run(cmd *cobra.Command, e env, args cliArgs, phrases []string) error {
	cfg, err := loadConfig(cmd, e, args)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if args.list {
		return printList(e.stdout)
	}

	if len(phrases) == 0 {
		phrases = cfg.Phrases
	}
	phrases = board.PhrasesOrDefault(phrases)

	if !args.force && !e.isInteractive() {
		return &exitError{code: 1, msg: "doesn't look like this is a terminal. this test requires that (use --force to skip the check)."}
	}

	selected, err := strategy.Select(cfg.Tests)
	if errors.Is(err, strategy.ErrNoMatch) {
		reportNoMatch(e.stderr, cfg.Tests)
		return &exitError{code: 1}
	}
	if err != nil {
		return err
	}

	th, err := theme.Resolve(cfg.Theme)
	if err != nil {
		return err
	}
	theme.Set(th)

	glyphs := box.ASCII
	if cfg.UnicodeBox {
		glyphs = box.Unicode
	}

	log.Debug("locale %s", width.InitLocale())

	opts := terminal.Options{
		Raw:          true,
		Color:        !cfg.NoColor,
		Device:       args.device,
		SizeProvider: cfg.SizeProvider,
	}
	var entries []board.Entry
	err = terminal.With(opts, func(s *terminal.Session) error {
		var err error
		entries, err = board.Run(screen.New(s), board.Options{
			Strategies:    selected,
			Phrases:       phrases,
			AllowOverlong: cfg.AllowOverlong,
			Theme:         th,
			Glyphs:        glyphs,
		})
		return err
	})
	if errors.Is(err, board.ErrOverlong) {
		return &exitError{code: 1, msg: fmt.Sprintf("%v\nuse --allow-overlong (with -t read_pos) to draw it anyway", err)}
	}
	if err != nil {
		return err
	}

	for _, en := range entries {
		log.Info("%-18s %3d  %q", en.Strategy, en.Width, en.Phrase)
	}
	fmt.Fprintln(e.stdout)
	return nil
}

func loadConfig(cmd *cobra.Command, e env, args cliArgs) (*config.Config, error) {
	cfg, err := config.Load(args.configPath, e.cwd)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, args, cfg)
	return cfg, nil
}

// setupLogging applies the verbosity and log destination. The returned
// func undoes the redirection.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	if cfg.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

func reportNoMatch(w io.Writer, filters []string) {
	fmt.Fprintln(w, "Warning: all implementations filtered. Printing options.")
	_ = printList(w)
	for _, f := range strategy.Unmatched(filters) {
		if s := strategy.Suggest(f); len(s) > 0 {
			fmt.Fprintf(w, "%q: did you mean %s?\n", f, strings.Join(s, ", "))
		}
	}
}

func configCmd(e env, args *cliArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, e, *args)
			if err != nil {
				return err
			}
			_, err = io.WriteString(e.stdout, config.Explain(cfg, e.cwd))
			return err
		},
	}
}
