package classify

import (
	"strings"
)

// TokenSet is a multiset of whitespace-separated tokens, token -> count.
// It lives only for the duration of a comparison; the engine caches at most
// one token set (the current anchor's) at a time.
type TokenSet map[string]int

// Tokenize builds a token set from file content
func Tokenize(content string) TokenSet {
	set := make(TokenSet)
	for _, token := range strings.Fields(content) {
		set[token]++
	}
	return set
}

// Total returns the total token count including repetitions
func (s TokenSet) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// Overlap computes the multiset overlap score between two token sets:
// the sum of per-token minimum counts over the sum of per-token maximum
// counts, a value in [0,1]. Two empty sets score 0.
func Overlap(a, b TokenSet) float64 {
	common := 0
	total := 0

	for token, countA := range a {
		countB := b[token]
		if countA < countB {
			common += countA
		} else {
			common += countB
		}
		if countA > countB {
			total += countA
		} else {
			total += countB
		}
	}
	for token, countB := range b {
		if _, seen := a[token]; !seen {
			total += countB
		}
	}

	if total == 0 {
		return 0
	}
	return float64(common) / float64(total)
}
