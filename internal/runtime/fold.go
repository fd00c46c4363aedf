package runtime

import (
	"regexp/syntax"
	"slices"
	"unicode"
)

// unfoldCase rewrites every case-insensitive literal in re as explicit
// character classes, so (?i)ab becomes [Aa][Bb], and clears FoldCase
// throughout. The parser has already folded character classes.
//
// coregex extracts prefilter literals from fold-case literals byte-for-byte
// and only folds ASCII letters in its NFA, so it must never see one.
// The tree is handed to it directly: printing and reparsing would turn
// [Aa] back into a fold-case literal.
func unfoldCase(re *syntax.Regexp) *syntax.Regexp {
	if len(re.Sub) > 0 {
		subs := make([]*syntax.Regexp, 0, len(re.Sub))
		for _, sub := range re.Sub {
			sub = unfoldCase(sub)
			// Keep concatenations flat.
			if re.Op == syntax.OpConcat && sub.Op == syntax.OpConcat {
				subs = append(subs, sub.Sub...)
				continue
			}
			subs = append(subs, sub)
		}
		re.Sub = subs
	}
	if re.Op == syntax.OpLiteral && re.Flags&syntax.FoldCase != 0 {
		re = foldLiteral(re)
	}
	re.Flags &^= syntax.FoldCase
	return re
}

// foldLiteral turns a case-folded literal into a concatenation where every
// rune with case variants becomes a class of all of them.
func foldLiteral(lit *syntax.Regexp) *syntax.Regexp {
	flags := lit.Flags &^ syntax.FoldCase
	subs := make([]*syntax.Regexp, 0, len(lit.Rune))
	for _, r := range lit.Rune {
		orbit := foldOrbit(r)
		if len(orbit) == 1 {
			if n := len(subs); n > 0 && subs[n-1].Op == syntax.OpLiteral {
				subs[n-1].Rune = append(subs[n-1].Rune, r)
				continue
			}
			subs = append(subs, &syntax.Regexp{Op: syntax.OpLiteral, Flags: flags, Rune: []rune{r}})
			continue
		}
		class := make([]rune, 0, 2*len(orbit))
		for _, o := range orbit {
			class = append(class, o, o)
		}
		subs = append(subs, &syntax.Regexp{Op: syntax.OpCharClass, Flags: flags, Rune: class})
	}
	if len(subs) == 1 {
		return subs[0]
	}
	return &syntax.Regexp{Op: syntax.OpConcat, Flags: flags, Sub: subs}
}

// foldOrbit returns r and every rune equivalent to it under simple case
// folding, in ascending order.
func foldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	slices.Sort(orbit)
	return orbit
}
