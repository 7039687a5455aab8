package cmd

import "fmt"

// searchExit is returned by search/watch to signal a specific exit code.
// Same convention as grep: 0=found, 1=not found, 2=error.
type searchExit struct{ code int }

func (e searchExit) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "no match"
	default:
		return fmt.Sprintf("search error (exit %d)", e.code)
	}
}

// ExitCode extracts the exit code from a searchExit error.
// Returns -1 if the error is not a searchExit.
func ExitCode(err error) int {
	if se, ok := err.(searchExit); ok {
		return se.code
	}
	return -1
}
