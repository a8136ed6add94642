package expansions

import (
	"github.com/npillmayer/expansions/eft"
)

// distill sums an arbitrary list of raw components exactly into one
// non-overlapping expansion. Adjacent values are paired with a two-sum into
// ⌈k/2⌉ seed expansions of length ≤ 2 (an odd value out becomes a
// singleton); fastExpansionSum is then folded across the seeds to
// accumulate a single expansion.
func distill(xs []float64) []float64 {
	if len(xs) == 0 {
		return []float64{0}
	}
	parts := make([][]float64, 0, (len(xs)+1)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		s, t := eft.TwoSum(xs[i], xs[i+1])
		parts = append(parts, []float64{t, s})
	}
	if len(xs)%2 == 1 {
		parts = append(parts, []float64{xs[len(xs)-1]})
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = fastExpansionSum(acc, p)
	}
	return acc
}

// expansionProduct multiplies two non-overlapping expansions: scale a by
// every component of b, then distill the raw components of all |b|
// sub-expansions into one. The result has up to 2·|a|·|b| components before
// compression.
func expansionProduct(a, b []float64) []float64 {
	raw := make([]float64, 0, 2*len(a)*len(b))
	for _, x := range b {
		raw = append(raw, scaleExpansion(a, x)...)
	}
	tracer().Debugf("expansion product: distilling %d raw components", len(raw))
	return distill(raw)
}
