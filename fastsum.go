package expansions

import (
	"math"

	"github.com/npillmayer/expansions/eft"
)

// mergeByMagnitude merges two sequences pre-sorted by ascending magnitude
// into one. On equal magnitudes the entry from b is taken first; this
// tie-break is fixed to keep results deterministic across operand orders.
func mergeByMagnitude(a, b []float64) []float64 {
	g := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if math.Abs(b[j]) <= math.Abs(a[i]) {
			g = append(g, b[j])
			j++
		} else {
			g = append(g, a[i])
			i++
		}
	}
	g = append(g, a[i:]...)
	return append(g, b[j:]...)
}

// fastExpansionSum adds two non-overlapping expansions with a linear merge
// followed by a single scan: seed with a fast two-sum of the two
// smallest-magnitude entries, then combine the running high value with each
// further merged component via a two-sum, collecting the low outputs as
// result components. O(n+m) two-sums.
func fastExpansionSum(a, b []float64) []float64 {
	g := mergeByMagnitude(a, b)
	if len(g) == 1 {
		return g
	}
	h := make([]float64, 0, len(g))
	q, t := eft.FastTwoSum(g[1], g[0])
	h = append(h, t)
	for _, x := range g[2:] {
		q, t = eft.TwoSum(q, x)
		h = append(h, t)
	}
	return append(h, q)
}
