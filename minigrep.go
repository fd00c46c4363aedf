package minigrep

import (
	"context"

	"github.com/kolkov/minigrep/internal/runtime"
)

// Version is the minigrep version string.
const Version = "0.1.0"

// StdinTarget is the target that selects standard input.
const StdinTarget = "-"

// PatternOptions controls pattern compilation.
type PatternOptions struct {
	// IgnoreCase makes the pattern match regardless of letter case.
	IgnoreCase bool
}

// Search compiles pattern and searches target with it.
// This is a convenience function for one-off searches.
// For repeated searches with the same pattern, use Compile followed by
// Pattern.Search.
//
// target is a file, a directory (searched recursively) or StdinTarget.
// Matches are written to config.Output; config may be nil.
//
// Example:
//
//	stats, err := minigrep.Search(ctx, "foo.*bar", "./logs", nil)
func Search(ctx context.Context, pattern, target string, config *Config) (Stats, error) {
	var opts PatternOptions
	if config != nil {
		opts.IgnoreCase = config.IgnoreCase
	}
	p, err := CompileWithOptions(pattern, opts)
	if err != nil {
		return Stats{}, err
	}
	return p.Search(ctx, target, config)
}

// Compile parses a pattern for matching.
// The returned Pattern is immutable and may be shared by any number of
// goroutines.
//
// Example:
//
//	p, err := minigrep.Compile(`^ERROR\b`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Match("ERROR disk full") // true
func Compile(pattern string) (*Pattern, error) {
	return CompileWithOptions(pattern, PatternOptions{})
}

// CompileWithOptions is like Compile with explicit options.
// A malformed pattern yields a *PatternError.
func CompileWithOptions(pattern string, opts PatternOptions) (*Pattern, error) {
	re, err := runtime.Compile(pattern, runtime.RegexConfig{
		IgnoreCase: opts.IgnoreCase,
	})
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Pattern{re: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies initialization of global pattern variables.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}
