// Package runtime provides the line-level machinery of a search: regex
// matching, line reading and match printing.
package runtime

import (
	"regexp/syntax"
	"strings"
	"unsafe"

	"github.com/coregx/coregex/meta"
)

// RegexConfig controls regex behavior.
type RegexConfig struct {
	// IgnoreCase makes the pattern match regardless of letter case.
	IgnoreCase bool
}

// Regex wraps the coregex meta engine for line matching.
// A Regex is immutable after compilation and safe for concurrent use.
// Patterns with literal substrings get a cheap rejection step
// before the regex engine runs.
type Regex struct {
	pattern  string
	engine   *meta.Engine
	literals *LiteralInfo // Fast rejection for patterns with literal substrings
}

// Compile creates a new Regex from pattern.
//
// The pattern is parsed here rather than by coregex so that case-insensitive
// parts can be rewritten first; see unfoldCase.
func Compile(pattern string, config RegexConfig) (*Regex, error) {
	flags := syntax.Perl
	if config.IgnoreCase {
		flags |= syntax.FoldCase
	}
	ast, err := syntax.Parse(pattern, flags)
	if err != nil {
		return nil, err
	}

	engine, err := meta.CompileRegexp(unfoldCase(ast), meta.DefaultConfig())
	if err != nil {
		return nil, err
	}

	// Literals are matched byte-for-byte, so any case folding
	// (from config or inline flags) disables the prefilter.
	var literals *LiteralInfo
	if !config.IgnoreCase && !strings.Contains(pattern, "(?") {
		literals = extractLiterals(pattern)
	}

	return &Regex{
		pattern:  pattern,
		engine:   engine,
		literals: literals,
	}, nil
}

// Pattern returns the pattern string as given to Compile.
func (r *Regex) Pattern() string {
	return r.pattern
}

// MatchString reports whether s contains any match.
func (r *Regex) MatchString(s string) bool {
	if r.literals != nil && r.literals.CanReject(s) {
		return false
	}
	return r.engine.IsMatch(stringToBytes(s))
}

// FindAllStringIndex returns all non-overlapping matches.
// If n > 0, at most n matches are returned; n == 0 returns nil.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 || (r.literals != nil && r.literals.CanReject(s)) {
		return nil
	}
	found := r.engine.FindAllIndicesStreaming(stringToBytes(s), n, nil)
	if len(found) == 0 {
		return nil
	}
	spans := make([][]int, len(found))
	for i, m := range found {
		spans[i] = []int{m[0], m[1]}
	}
	return spans
}

// stringToBytes returns a read-only view of s. The engine never writes
// to or retains the haystack.
func stringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
