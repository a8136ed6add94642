package expansions

import (
	"github.com/npillmayer/expansions/eft"
)

// compress reduces a non-overlapping expansion to its canonical minimal
// form in two linear passes.
//
// The first pass scans from the most significant component downward,
// repeatedly applying a fast two-sum between a running accumulator and the
// next component. A zero low output is absorbed silently; a non-zero low
// output pushes the high value onto an intermediate buffer and becomes the
// new accumulator. The second pass scans that buffer back upward
// symmetrically, again discarding exact zeros, and appends the final carry
// as the most significant output.
//
// A totally collapsing input yields the single component 0.0, never an
// empty sequence.
func compress(e []float64) []float64 {
	n := len(e)
	if n == 1 {
		return []float64{e[0]}
	}
	g := make([]float64, 0, n) // most significant first
	q := e[n-1]
	for i := n - 2; i >= 0; i-- {
		s, t := eft.FastTwoSum(q, e[i])
		if t != 0 {
			g = append(g, s)
			q = t
		} else {
			q = s
		}
	}
	g = append(g, q)
	h := make([]float64, 0, len(g)) // ascending again
	q = g[len(g)-1]
	for i := len(g) - 2; i >= 0; i-- {
		s, t := eft.FastTwoSum(g[i], q)
		if t != 0 {
			h = append(h, t)
		}
		q = s
	}
	return append(h, q)
}
