/*
Package poly evaluates polynomials with expansion arithmetic.

Polynomial evaluation with Horner's method is a compact showcase for exact
expansion arithmetic: near an ill-conditioned root the plain float64 scheme
loses all significant digits to cancellation, while the expansion-based
scheme carries the exact value through every step. The package is a thin
consumer of the engine in github.com/npillmayer/expansions and needs only
its construction, addition and multiplication operations.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package poly

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expansions'
func tracer() tracing.Trace {
	return tracing.Select("expansions")
}
