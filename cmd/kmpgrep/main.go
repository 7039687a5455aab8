// kmpgrep finds every (or the first/last N) occurrence of one or more
// patterns in a text using Knuth-Morris-Pratt search, and highlights them.
package main

import (
	"os"

	"github.com/corey/kmpgrep/cmd/kmpgrep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
