package eft

// Splitter is the Veltkamp splitting constant for IEEE-754 binary64.
//
// Its value is 2^27 + 1: with a 53-bit mantissa, multiplying by 2^⌈53/2⌉ + 1
// splits a float64 into a high part of at most 27 significant bits and a low
// part of at most 26 bits. For a different float width with mantissa p the
// analogous constant is 2^⌈p/2⌉ + 1.
const Splitter = 134217729.0

// FastTwoSum computes s = fl(a + b) and the exact rounding error t, so that
// s + t = a + b holds exactly. 3 floating-point operations.
//
// Precondition: |a| ≥ |b|. The caller is responsible for operand ordering;
// there is no runtime guard, and violating the precondition yields an
// incorrect t, not an error.
func FastTwoSum(a, b float64) (s, t float64) {
	s = a + b
	t = b - (s - a)
	return s, t
}

// TwoSum computes s = fl(a + b) and the exact rounding error t, so that
// s + t = a + b holds exactly. No precondition on the relative magnitude of
// the operands. 6 floating-point operations.
func TwoSum(a, b float64) (s, t float64) {
	s = a + b
	u := s - a
	t = (a - (s - u)) + (b - u)
	return s, t
}

// Split cuts a into hi + lo with non-overlapping mantissa bits, hi holding
// at most 27 significant bits and lo at most 26. hi + lo = a holds exactly.
func Split(a float64) (hi, lo float64) {
	c := Splitter * a
	hi = c - (c - a)
	lo = a - hi
	return hi, lo
}

// TwoProduct computes p = fl(a * b) and the exact rounding error e, so that
// p + e = a * b holds exactly. The error is reconstructed from the four
// partial products of the Veltkamp-split operands.
//
// The partial products are kept in named intermediates so that each
// operation is rounded individually; fusing any of them into an FMA would
// break the exactness contract.
func TwoProduct(a, b float64) (p, e float64) {
	p = a * b
	ah, al := Split(a)
	bh, bl := Split(b)
	ahbh := ah * bh
	ahbl := ah * bl
	albh := al * bh
	albl := al * bl
	e = albl - (((p - ahbh) - albh) - ahbl)
	return p, e
}
