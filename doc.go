/*
Package expansions implements exact arithmetic on floating-point expansions.

Expansions

An expansion represents a real number as an ordered sequence of ordinary
float64 components whose exact mathematical sum is the represented value.
Calculations that would otherwise suffer catastrophic cancellation or
accumulated rounding drift can be carried out with native floating-point
hardware only, while keeping the error bounded and predictable — no extended
precision and no arbitrary-precision library is involved.

_________________________________________________________________________

From a paper by Jonathan Richard Shewchuk, 1997:

Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric
Predicates

School of Computer Science, Carnegie Mellon University, Pittsburgh, PA, U.S.A.

Exact arithmetic often plays a critical role in fast geometric algorithms,
yet it is commonly implemented with arbitrary-precision integer packages
whose performance falls short. An alternative is to represent a value as an
expansion: a sum of ordinary floating-point numbers with non-overlapping
bits of significance. Addition and multiplication of expansions can be
performed using only rounded floating-point operations, by way of
error-free transformations that recover the exact rounding error of each
individual hardware operation. […] The algorithms are adaptive in the sense
that precision grows only as far as the input data demand.

_________________________________________________________________________

The two layers of this package are

  - the error-free transformations of sub-package eft (exact two-term sum
    and product), and
  - the expansion-level algorithms Grow, Sum, FastSum, Scale, Distill, Mul
    and Compress built on top of them.

Expansions are immutable value objects: every operation takes expansions as
input and returns a new expansion, no operation mutates a value a caller
still holds. Results of Add and Mul are compressed, i.e. reduced to their
minimal non-overlapping, zero-free form with components ordered by
ascending magnitude; the most significant component of a compressed
expansion is the best single-float approximation of the represented value.

Arithmetic is total over finite inputs. Non-finite inputs (NaN, ±Inf)
propagate by the ordinary IEEE-754 contagion rules and void the exactness
guarantees. Expansions are bounded by the float64 exponent range, not by a
digit count; this is not a bignum package, and there is no division.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package expansions

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expansions'
func tracer() tracing.Trace {
	return tracing.Select("expansions")
}

// ExpansionError is an error type for the expansions module
type ExpansionError string

func (e ExpansionError) Error() string {
	return string(e)
}

// ErrNoComponents is flagged when an expansion would be constructed from an
// empty component sequence. A valid expansion has at least one component.
const ErrNoComponents = ExpansionError("expansion must have at least one component")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ExpansionError("illegal arguments")

// ErrBuilderCompleted signals that a builder has already completed an
// expansion and it's illegal to further stage values.
const ErrBuilderCompleted = ExpansionError("forbidden to stage values; expansion has been completed")
