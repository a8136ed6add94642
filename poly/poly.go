package poly

import (
	"github.com/npillmayer/expansions"
)

// Polynomial holds the coefficients of a polynomial in one variable,
// constant term first: p[i] is the coefficient of x^i.
type Polynomial []float64

// Degree returns the degree of the polynomial, -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// EvalFloat64 evaluates p at x with Horner's method in plain float64
// arithmetic. Each step rounds; near ill-conditioned roots the result may
// carry no significant digits.
func (p Polynomial) EvalFloat64(x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	r := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		r = r*x + p[i]
	}
	return r
}

// Eval evaluates p at x with Horner's method in expansion arithmetic. Every
// multiplication and addition is exact, so the returned expansion represents
// the exact value of p(x).
func (p Polynomial) Eval(x float64) expansions.Expansion {
	if len(p) == 0 {
		return expansions.From(0)
	}
	tracer().Debugf("expansion Horner: degree %d polynomial at %g", p.Degree(), x)
	xe := expansions.From(x)
	r := expansions.From(p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		r = expansions.Add(expansions.Mul(r, xe), expansions.From(p[i]))
	}
	return r
}
