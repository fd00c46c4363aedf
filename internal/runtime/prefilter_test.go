package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLiterals(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string // nil means no prefilter
	}{
		{"apple", []string{"apple"}},
		{"foo.*bar", []string{"foo", "bar"}},
		{"^error: \\d+", []string{"error: "}},
		{"colou?r", []string{"colo"}},
		{"ab+cd", []string{"ab", "cd"}},
		{"abc*d", []string{"ab"}},
		{"x{2,3}yz", []string{"yz"}},
		{"[abc]def", []string{"def"}},
		{"\\.txt$", []string{".txt"}},
		{"héllo?", []string{"héll"}},
		{"foo|bar", nil},
		{"a(b|c)d", nil},
		{".*", nil},
		{"\\d+", nil},
		{"", nil},
		{"x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			info := extractLiterals(tt.pattern)
			if tt.want == nil {
				assert.Nil(t, info)
				return
			}
			require.NotNil(t, info)
			assert.Equal(t, tt.want, info.Required)
		})
	}
}

func TestCanReject(t *testing.T) {
	info := &LiteralInfo{Required: []string{"foo", "bar"}}

	assert.False(t, info.CanReject("foo and bar"))
	assert.False(t, info.CanReject("barfoo"))
	assert.True(t, info.CanReject("foo only"))
	assert.True(t, info.CanReject(""))
}

// A prefilter may only reject lines the regex itself rejects.
func TestPrefilterNeverRejectsMatch(t *testing.T) {
	patterns := []string{
		"apple", "foo.*bar", "colou?r", "ab+cd", "abc*d", "x{2,3}yz",
		"[abc]def", "\\.txt$", "^error: \\d+", "a\\.?b", "go+gle",
		"[]x]yz", "[^]x]yz", "(ab)?cd", "héllo?", "a{0}bc", "ba{,2}c",
	}
	lines := []string{
		"", "apple", "banana", "apple pie", "foo bar", "bar foo", "color",
		"colour", "colr", "abcd", "abbbcd", "acd", "abd", "abccd", "xxyz",
		"yz", "adef", "def", "file.txt", "filetxt", "error: 42", "error: x",
		"ab", "a.b", "gogle", "google", "ggle", "]yz", "xyz", "cd", "abcd",
		"héll", "héllo", "bc", "ba{,2}c", "bc",
	}

	for _, pattern := range patterns {
		re := mustCompile(t, pattern, RegexConfig{})
		if re.literals == nil {
			continue
		}
		for _, line := range lines {
			if re.engine.IsMatch([]byte(line)) {
				assert.False(t, re.literals.CanReject(line),
					"pattern %q: prefilter rejected matching line %q", pattern, line)
			}
		}
	}
}

func TestContainsTopLevelAlternation(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"foo|bar", true},
		{"(foo|bar)", false},
		{"[|]", false},
		{"a\\|b", false},
		{"(a)|b", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsTopLevelAlternation(tt.pattern), tt.pattern)
	}
}
