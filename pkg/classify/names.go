package classify

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// NameSimilarity computes a normalized similarity ratio between two file
// names in [0,1]: twice the number of matching characters over the combined
// length of both names. Identical names score 1.0.
func NameSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA+lenB == 0 {
		return 1.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	matching := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			matching += utf8.RuneCountInString(d.Text)
		}
	}

	return 2.0 * float64(matching) / float64(lenA+lenB)
}
