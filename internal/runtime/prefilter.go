package runtime

import (
	"strings"
	"unicode/utf8"
)

// minLiteralLen is the shortest literal worth a strings.Contains check.
const minLiteralLen = 2

// LiteralInfo holds literal substrings that every match of a pattern
// must contain. A line missing any of them can be rejected without
// running the regex engine.
type LiteralInfo struct {
	Required []string // Must appear somewhere - use strings.Contains
}

// extractLiterals analyzes a regex pattern and extracts required literal
// substrings. Returns nil if no useful literals were found.
//
// The extractor is conservative: it may miss literals, but it must never
// produce one that a matching line could lack.
//
// Examples:
//   - "foo.*bar" -> ["foo", "bar"]
//   - "^error: \\d+" -> ["error: "]
//   - "colou?r" -> ["colo"]
//   - "foo|bar" -> nil (only one branch is required)
func extractLiterals(p string) *LiteralInfo {
	if p == "" || containsTopLevelAlternation(p) {
		return nil
	}

	var required []string
	var current strings.Builder
	flush := func() {
		if current.Len() >= minLiteralLen {
			required = append(required, current.String())
		}
		current.Reset()
	}
	// dropLast removes the last rune, which a following quantifier made optional.
	dropLast := func() {
		s := current.String()
		_, size := utf8.DecodeLastRuneInString(s)
		current.Reset()
		current.WriteString(s[:len(s)-size])
	}

scan:
	for i := 0; i < len(p); {
		c := p[i]
		switch {
		case c == '[':
			flush()
			i = skipCharClass(p, i)
		case c == '(':
			flush()
			i = skipGroup(p, i)
		case c == '*' || c == '?':
			if current.Len() > 0 {
				dropLast()
			}
			flush()
			i++
		case c == '{':
			if current.Len() > 0 {
				dropLast()
			}
			flush()
			end := strings.IndexByte(p[i:], '}')
			if end < 0 {
				break scan
			}
			i += end + 1
		case c == '\\':
			if i+1 < len(p) && isLiteralEscape(p[i+1]) {
				current.WriteByte(p[i+1])
				i += 2
				continue
			}
			// \d, \x{..}, \Q..\E and friends: stop rather than parse them.
			break scan
		case isMetaChar(c):
			flush()
			i++
		default:
			current.WriteByte(c)
			i++
		}
	}
	flush()

	if len(required) == 0 {
		return nil
	}
	return &LiteralInfo{Required: required}
}

// containsTopLevelAlternation checks if pattern contains | outside of groups.
func containsTopLevelAlternation(p string) bool {
	depth := 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case '[':
			i = skipCharClass(p, i) - 1
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// skipCharClass returns the index after the closing ] of a character class.
func skipCharClass(p string, start int) int {
	i := start + 1
	if i < len(p) && p[i] == '^' {
		i++
	}
	// A ] right after [ or [^ is a literal member.
	if i < len(p) && p[i] == ']' {
		i++
	}
	for i < len(p) {
		switch {
		case p[i] == '\\' && i+1 < len(p):
			i += 2
		case p[i] == '[' && strings.HasPrefix(p[i:], "[:"):
			// POSIX class like [:alpha:]
			if end := strings.Index(p[i+2:], ":]"); end >= 0 {
				i += end + 4
			} else {
				i++
			}
		case p[i] == ']':
			return i + 1
		default:
			i++
		}
	}
	return len(p)
}

// skipGroup returns the index after the closing ) of a group.
func skipGroup(p string, start int) int {
	depth := 1
	i := start + 1
	for i < len(p) && depth > 0 {
		switch p[i] {
		case '\\':
			i += 2
			continue
		case '[':
			i = skipCharClass(p, i)
			continue
		case '(':
			depth++
		case ')':
			depth--
		}
		i++
	}
	return i
}

// isMetaChar returns true if c is a regex metacharacter that cannot be a literal.
func isMetaChar(c byte) bool {
	switch c {
	case '.', '*', '+', '?', '{', '}', '[', ']', '(', ')', '|', '^', '$':
		return true
	}
	return false
}

// isLiteralEscape returns true if the character after a backslash is
// a quoted metacharacter rather than a class like \d or \s.
func isLiteralEscape(c byte) bool {
	switch c {
	case '.', '*', '+', '?', '{', '}', '[', ']', '(', ')', '|', '^', '$', '\\', '/', '-':
		return true
	}
	return false
}

// CanReject reports whether s definitely cannot match.
// This is the hot path - must have zero allocations.
func (li *LiteralInfo) CanReject(s string) bool {
	for _, req := range li.Required {
		if !strings.Contains(s, req) {
			return true
		}
	}
	return false
}
