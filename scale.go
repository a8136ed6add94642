package expansions

import (
	"github.com/npillmayer/expansions/eft"
)

// scaleExpansion multiplies a non-overlapping expansion e by a single value
// b, producing an exact representation of e·b with 2·len(e) components. For
// each component the exact product is formed with a two-product; its low
// part is folded into the running carry with a two-sum, the result's high
// part combines with the product's high part via a fast two-sum, and both
// low outputs of the step become result components.
func scaleExpansion(e []float64, b float64) []float64 {
	h := make([]float64, 0, 2*len(e))
	q, t := eft.TwoProduct(e[0], b)
	h = append(h, t)
	for _, x := range e[1:] {
		ph, pl := eft.TwoProduct(x, b)
		s, t := eft.TwoSum(q, pl)
		h = append(h, t)
		q, t = eft.FastTwoSum(ph, s)
		h = append(h, t)
	}
	return append(h, q)
}
