/*
Package format renders expansions for human readers.

Expansions with many components are unwieldy to read as one long line. The
console formatter of this package prints components in scientific notation,
most significant first, colorizes the leading component (the best
single-float approximation) differently from the residual tail, and wraps
long component lists at a line width derived from the current terminal.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expansions'
func tracer() tracing.Trace {
	return tracing.Select("expansions")
}
