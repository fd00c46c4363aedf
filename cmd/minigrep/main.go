// minigrep - search files for lines matching a regular expression
//
// Prints every matching line of a file, a directory tree or standard
// input, prefixed with its location.
package main

import (
	"context"
	"os"

	"github.com/kolkov/minigrep"
)

// version is set by GoReleaser at build time via -ldflags.
var (
	version = minigrep.Version
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
