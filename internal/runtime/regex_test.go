package runtime

import (
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t testing.TB, pattern string, config RegexConfig) *Regex {
	t.Helper()
	re, err := Compile(pattern, config)
	require.NoError(t, err, "Compile(%q)", pattern)
	return re
}

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{"hello", false},
		{"^[a-z]+$", false},
		{"[0-9]+", false},
		{"(foo|bar)", false},
		{"\\d+", false},
		{".*\\.txt$", false},
		{"[", true},
		{"[invalid", true},
		{"(unclosed", true},
		{"a**", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern, RegexConfig{})
			if tt.wantErr {
				assert.Error(t, err, "pattern %q", tt.pattern)
				assert.Nil(t, re)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, re)
			assert.Equal(t, tt.pattern, re.Pattern())
		})
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"hello", "hello world", true},
		{"hello", "goodbye world", false},
		{"^hello", "hello world", true},
		{"^hello", "say hello", false},
		{"world$", "hello world", true},
		{"world$", "world hello", false},
		{"[0-9]+", "abc123def", true},
		{"[0-9]+", "abcdef", false},
		{"^$", "", true},
		{"^$", "x", false},
		{"foo|bar", "foo", true},
		{"foo|bar", "bar", true},
		{"foo|bar", "baz", false},
		{"foo.*bar", "foo bar", true},
		{"foo.*bar", "bar foo", false},
		{"apple", "apple pie", true},
		{".*", "", true},
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		{"Hello", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.input, func(t *testing.T) {
			re := mustCompile(t, tt.pattern, RegexConfig{})
			assert.Equal(t, tt.want, re.MatchString(tt.input), "MatchString(%q)", tt.input)
		})
	}
}

func TestIgnoreCase(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"hello", "HELLO world", true},
		{"hello", "say HeLlO", true},
		{"hello", "goodbye", false},
		{"apple", "Apple", true},
		{"apple", "aPPLE pie", true},
		{"Apple", "apple", true},
		{"foo.*bar", "FOO and Bar", true},
		{"[a-c]x", "BX", true},
		{"error: \\d+", "Error: 42", true},
		{"café", "CAFÉ", true},
		{"straße", "STRASSE", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.input, func(t *testing.T) {
			re := mustCompile(t, tt.pattern, RegexConfig{IgnoreCase: true})
			assert.Equal(t, tt.want, re.MatchString(tt.input), "MatchString(%q)", tt.input)
		})
	}

	re := mustCompile(t, "hello", RegexConfig{IgnoreCase: true})
	assert.Equal(t, "hello", re.Pattern(), "Pattern() returns the pattern without flags")
	assert.Equal(t, [][]int{{4, 9}}, re.FindAllStringIndex("say HeLlO", -1))
}

func TestInlineFlags(t *testing.T) {
	re := mustCompile(t, "(?i)error", RegexConfig{})
	assert.True(t, re.MatchString("ERROR: disk full"))
	assert.True(t, re.MatchString("an Error occurred"))
	assert.Nil(t, re.literals, "inline flags disable the literal prefilter")

	// Only the group is case-insensitive.
	re = mustCompile(t, "x(?i:y)", RegexConfig{})
	assert.True(t, re.MatchString("xY"))
	assert.False(t, re.MatchString("XY"))
}

func TestUnfoldCase(t *testing.T) {
	tests := []struct {
		pattern    string
		ignoreCase bool
		want       string
	}{
		{"ab", true, "[Aa][Bb]"},
		{"a1b", true, "[Aa]1[Bb]"},
		{"12", true, "12"},
		{"(?i)ab", false, "[Aa][Bb]"},
		{"x(?i:y)", false, "x[Yy]"},
		{"(?i:ab)*", false, "(?:[Aa][Bb])*"},
		{"ab", false, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			flags := syntax.Perl
			if tt.ignoreCase {
				flags |= syntax.FoldCase
			}
			re, err := syntax.Parse(tt.pattern, flags)
			require.NoError(t, err)

			assert.Equal(t, tt.want, unfoldCase(re).String())
		})
	}
}

func TestFoldOrbit(t *testing.T) {
	assert.Equal(t, []rune{'A', 'a'}, foldOrbit('a'))
	assert.Equal(t, []rune{'K', 'k', '\u212A'}, foldOrbit('K'), "Kelvin sign folds to k")
	assert.Equal(t, []rune{'1'}, foldOrbit('1'))
}

func TestFindAllStringIndex(t *testing.T) {
	re := mustCompile(t, "[0-9]+", RegexConfig{})
	input := "a1b23c456d"

	got := re.FindAllStringIndex(input, -1)
	assert.Equal(t, [][]int{{1, 2}, {3, 5}, {6, 9}}, got)

	assert.Empty(t, re.FindAllStringIndex("abc", -1))
	assert.Nil(t, re.FindAllStringIndex(input, 0))
}

func TestFindAllStringIndex_Prefiltered(t *testing.T) {
	re := mustCompile(t, "apple", RegexConfig{})
	require.NotNil(t, re.literals)

	assert.Equal(t, [][]int{{0, 5}, {10, 15}}, re.FindAllStringIndex("apple and apple", -1))
	assert.Empty(t, re.FindAllStringIndex("banana", -1))
}
