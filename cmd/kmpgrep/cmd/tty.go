package cmd

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal returns true if w is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isStdinPipe returns true if stdin is a pipe or file (not a terminal).
func isStdinPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// resolveColor determines whether to use color output based on the --color
// value ("auto", "always", or "never") and whether out is a terminal.
func resolveColor(colorFlag string, out io.Writer) bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return isTerminal(out)
	}
}

// stdinFor picks the reader to search when no text or file is given: an
// injected reader (tests), piped stdin, or nothing.
func stdinFor(in io.Reader) io.Reader {
	if in != os.Stdin {
		return in
	}
	if isStdinPipe() {
		return os.Stdin
	}
	return nil
}
