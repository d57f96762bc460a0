package search

import (
	"regexp"
	"strings"
)

// stopwords is the fixed list of articles, conjunctions, and short
// prepositions removed during tokenization and keyword extraction.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
}

// nonWordRE matches runs of characters outside the word/space class;
// punctuation is replaced with a space before splitting.
var nonWordRE = regexp.MustCompile(`[^\w\s]+`)

// whitespaceRE matches runs of whitespace used as the token separator.
var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize lower-cases s and collapses punctuation and whitespace runs into
// single spaces. The result is the canonical form used for substring checks
// and similarity comparisons. Pure and deterministic.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWordRE.ReplaceAllString(s, " ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize normalizes s and splits it into tokens with stop-words removed.
// Source order is preserved; duplicates are not removed.
func Tokenize(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	parts := strings.Split(n, " ")
	out := make([]string, 0, len(parts))
	for _, w := range parts {
		if w == "" {
			continue
		}
		if _, skip := stopwords[w]; skip {
			continue
		}
		out = append(out, w)
	}
	return out
}

// maxDerivedKeywords caps keyword sets derived automatically from titles.
const maxDerivedKeywords = 5

// ExtractKeywords derives a keyword set from a title: tokens shorter than
// three characters are dropped along with stop-words, and at most five
// keywords are kept in source order (most salient first).
func ExtractKeywords(title string) []string {
	toks := Tokenize(title)
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, 0, maxDerivedKeywords)
	for _, w := range toks {
		if len(w) <= 2 {
			continue
		}
		out = append(out, w)
		if len(out) == maxDerivedKeywords {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
