// Package search implements the fuzzy matching and classification engine that
// powers video search. It is intentionally small and dependency-free, but
// engineered with production-grade ergonomics:
//
//   - No logging in the library (callers decide how/what to log)
//   - Clear, documented types and functional options (Option pattern)
//   - Deterministic scoring and sorting (stable order for ties)
//   - Immutable snapshots: the engine never mutates the records it scans
//   - Sensible defaults (relevance threshold, result caps)
//
// Relevance blends exact-substring checks with Levenshtein similarity over
// title, channel, and keyword fields, plus configurable additive bonuses.
package search

// Distance returns the Levenshtein edit distance between a and b: the minimum
// number of single-character insertions, deletions, or substitutions needed to
// transform a into b. It satisfies Distance(a,a)==0, symmetry, and the
// triangle inequality. Empty inputs fall out of the table boundary naturally
// (the distance is the length of the other string).
//
// The classic DP table is collapsed to two rows that are swapped per
// iteration, so the function allocates O(len(a)) instead of O(len(a)*len(b)).
// This matters: it runs once per candidate field per query.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min3(prev[j-1], curr[j-1], prev[j])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// Similarity maps edit distance onto [0,1]: 1 - Distance(a,b)/max(len(a),
// len(b), 1). Equal non-empty strings score 1. A comparison against "" scores
// 0 unless both strings are empty, which is defined as 1 (degenerate case;
// the max(...,1) term keeps the division well-defined).
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 1
	}
	s := 1 - float64(Distance(a, b))/float64(n)
	if s < 0 {
		return 0
	}
	return s
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
