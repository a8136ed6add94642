package expansions

// Add adds two expansions and returns a new compressed expansion.
func Add(a, b Expansion) Expansion {
	return expansion(compress(fastExpansionSum(a.components(), b.components())))
}

// Mul multiplies two expansions and returns a new compressed expansion.
//
// The raw product of expansions of lengths n and m has up to 2·n·m
// components; Mul distills and compresses them, which makes chains of
// multiplications practical.
func Mul(a, b Expansion) Expansion {
	return expansion(compress(expansionProduct(a.components(), b.components())))
}

// Grow adds a single float64 value to an expansion of length m, returning a
// non-overlapping expansion of length m+1 (Shewchuk's Grow-Expansion).
func Grow(e Expansion, b float64) Expansion {
	return expansion(growExpansion(e.components(), b))
}

// Sum adds two expansions component by component, growing the running
// expansion by one component of b at a time. The result is non-overlapping
// but not compact; cost is O(|a|·|b|) two-sums. Prefer FastSum.
func Sum(a, b Expansion) Expansion {
	return expansion(expansionSum(a.components(), b.components()))
}

// FastSum adds two expansions with Shewchuk's merge-based Fast-Expansion-Sum
// in O(|a|+|b|) two-sums. The result is non-overlapping but not necessarily
// compact; callers typically Compress afterwards, or use Add.
func FastSum(a, b Expansion) Expansion {
	return expansion(fastExpansionSum(a.components(), b.components()))
}

// Scale multiplies an expansion of length n by a single float64 value,
// returning an exact representation of e·b as an expansion of 2n components
// (Shewchuk's Scale-Expansion). The result is not compact.
func Scale(e Expansion, b float64) Expansion {
	return expansion(scaleExpansion(e.components(), b))
}

// Distill sums an arbitrary number of expansions exactly into one
// non-overlapping expansion. The result is not compressed.
//
// An empty argument list is rejected with ErrIllegalArguments.
func Distill(es ...Expansion) (Expansion, error) {
	if len(es) == 0 {
		return Expansion{}, ErrIllegalArguments
	}
	var raw []float64
	for _, e := range es {
		raw = append(raw, e.components()...)
	}
	return expansion(distill(raw)), nil
}

// Compress reduces an expansion to its canonical minimal form: components
// non-overlapping, ordered by ascending magnitude, and free of zeros —
// except for the zero-valued expansion, which compresses to the single
// component 0.0, never to an empty sequence. Compress is idempotent.
func Compress(e Expansion) Expansion {
	return expansion(compress(e.components()))
}
