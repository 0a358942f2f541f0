// ABOUTME: With scopes a Session so the terminal is restored on every exit path
// ABOUTME: Panics inside the scope are printed with a stack trace and re-raised after restoring

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"golang.org/x/term"

	"github.com/mauromedda/boxwidth/internal/log"
)

// panicOutput receives the panic value and stack trace printed by With.
var panicOutput io.Writer = os.Stderr

// With opens a Session, runs fn, and always closes the Session afterwards,
// including when fn returns an error or panics. A failure to close (for
// example to restore the saved attributes) is logged, not returned, so it
// never masks the error from fn. A panic in fn is printed with its stack
// trace once the terminal is restored, then re-raised.
func With(opts Options, fn func(*Session) error) error {
	s, err := Open(opts)
	if err != nil {
		return err
	}

	defer func() {
		r := recover()
		var stack []byte
		if r != nil {
			// Captured before Close so the trace still shows where fn panicked.
			stack = debug.Stack()
		}
		if cerr := s.Close(); cerr != nil {
			log.Error("releasing terminal: %v", cerr)
		}
		if r != nil {
			fmt.Fprintf(panicOutput, "\npanic: %v\n\n%s\n", r, stack)
			panic(r)
		}
	}()

	return fn(s)
}

// IsInteractive reports whether stdout is a terminal and TERM names a
// terminal type other than "dumb".
func IsInteractive(getenv func(string) string) bool {
	return isInteractive(term.IsTerminal(int(os.Stdout.Fd())), getenv)
}

func isInteractive(stdoutIsTTY bool, getenv func(string) string) bool {
	if !stdoutIsTTY {
		return false
	}
	t := getenv("TERM")
	return t != "" && !strings.EqualFold(t, "dumb")
}
