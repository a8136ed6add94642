package expansions

import (
	"github.com/npillmayer/expansions/eft"
)

// growExpansion folds a single value b into a non-overlapping expansion e,
// producing a non-overlapping expansion of length len(e)+1. At each step the
// low output of a two-sum becomes a result component and the high output is
// carried forward to combine with the next input component; the final carry
// is appended as the most significant component.
func growExpansion(e []float64, b float64) []float64 {
	h := make([]float64, 0, len(e)+1)
	q := b
	for _, x := range e {
		var t float64
		q, t = eft.TwoSum(q, x)
		h = append(h, t)
	}
	return append(h, q)
}

// expansionSum adds two non-overlapping expansions by growing each component
// of b into the running expansion derived from a, one at a time. O(n·m)
// two-sums.
func expansionSum(a, b []float64) []float64 {
	h := a
	for _, x := range b {
		h = growExpansion(h, x)
	}
	return h
}
