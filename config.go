package minigrep

import (
	"io"
	"os"

	"github.com/kolkov/minigrep/internal/parallel"
)

// Config holds configuration options for a search.
type Config struct {
	// Output receives matched lines.
	// If nil, os.Stdout is used.
	Output io.Writer

	// Stderr receives warnings about files that could not be read.
	// If nil, warnings are discarded.
	Stderr io.Writer

	// Stdin is read when the target is StdinTarget.
	// If nil, os.Stdin is used.
	Stdin io.Reader

	// Workers is the number of files searched concurrently when the
	// target is a directory. Default: runtime.NumCPU().
	Workers int

	// IgnoreCase makes Search compile the pattern case-insensitively.
	// Ignored by Pattern.Search, whose pattern is already compiled.
	IgnoreCase bool

	// WithFilename prefixes every match with its source even when the
	// target is a single file or standard input. Directory targets are
	// always prefixed.
	WithFilename bool

	// Color highlights output lines with ANSI escapes.
	Color bool

	// WarningColor highlights warnings written to Stderr.
	WarningColor bool
}

// withDefaults returns a copy of c with unset fields filled in.
// A nil receiver yields the default configuration.
func (c *Config) withDefaults() Config {
	var out Config
	if c != nil {
		out = *c
	}
	if out.Output == nil {
		out.Output = os.Stdout
	}
	if out.Stderr == nil {
		out.Stderr = io.Discard
	}
	if out.Stdin == nil {
		out.Stdin = os.Stdin
	}
	if out.Workers <= 0 {
		out.Workers = parallel.DefaultConfig().NumWorkers
	}
	return out
}
