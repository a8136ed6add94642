/*
Package numfile provides API helpers to sum numeric text files exactly.

A numeric text file holds whitespace-separated decimal numbers. Load parses
the file fragment by fragment and distills all values into a single exact
expansion, preserving a synchronous API over a bounded asynchronous pipeline
internally. Clients interested in the progress of large loads may open a
Loader and subscribe to fragment-loaded events.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package numfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expansions'
func tracer() tracing.Trace {
	return tracing.Select("expansions")
}
