// Package minigrep searches files, directory trees and standard input
// for lines matching a regular expression.
//
// minigrep is the library behind the minigrep command, featuring:
//   - High-performance regex engine (coregex) with literal prefiltering
//   - Lazy recursive file discovery
//   - Parallel search of directory trees on a bounded worker pool
//   - Line-atomic output safe for concurrent writers
//
// # Quick Start
//
// For a one-off search:
//
//	stats, err := minigrep.Search(ctx, "foo.*bar", "./logs", nil)
//
// With configuration:
//
//	stats, err := minigrep.Search(ctx, "apple", "sample.txt", &minigrep.Config{
//	    IgnoreCase:   true,
//	    WithFilename: true,
//	})
//
// # Compiled Patterns
//
// For repeated searches with the same pattern:
//
//	p, err := minigrep.Compile(`^ERROR`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, dir := range dirs {
//	    stats, err := p.Search(ctx, dir, nil)
//	    // ...
//	}
//
// # Output Format
//
// Matches from a directory target are written as
//
//	path:line: text
//
// and matches from a single file or standard input as
//
//	line: text
//
// Line numbers are 1-based physical line positions. Lines that are not
// valid UTF-8 are skipped but still counted.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [PatternError]: the pattern does not compile
//   - [FileError]: a file could not be opened or read (reported as a warning)
//   - [WriteError]: matches could not be written; the search stops
//
// # Thread Safety
//
// Compiled [Pattern] values are safe for concurrent use.
// Each call to [Pattern.Search] has its own output state.
package minigrep
