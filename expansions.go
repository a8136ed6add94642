package expansions

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"iter"
	"strconv"
)

// Expansion stores a real value as an ordered sequence of float64
// components. The represented value is the exact mathematical sum of the
// components, evaluated as if with infinite precision, not by floating-point
// re-summation.
//
// Components are ordered by ascending magnitude: least significant first,
// most significant last. Components of an expansion returned by the engine
// are non-overlapping, i.e. no two components share significant bits.
//
// An expansion created by
//
//	Expansion{}
//
// is a valid object and represents zero.
//
// Expansions are value objects. Engine operations never mutate their
// operands; every result is a freshly constructed value, so expansions may
// be shared freely between goroutines without synchronization.
type Expansion struct {
	comp []float64
}

// zeroComp backs the zero-value expansion.
var zeroComp = []float64{0}

// components returns the backing sequence, mapping the zero value to the
// canonical single-component zero expansion.
func (e Expansion) components() []float64 {
	if len(e.comp) == 0 {
		return zeroComp
	}
	return e.comp
}

// expansion wraps an engine-produced component sequence without copying.
// Callers must hand over ownership of comp.
func expansion(comp []float64) Expansion {
	return Expansion{comp: comp}
}

// From creates an expansion from a single float64 value.
func From(v float64) Expansion {
	return Expansion{comp: []float64{v}}
}

// FromComponents creates an expansion from a sequence of components ordered
// by ascending magnitude. The components are copied and taken as-is: callers
// are responsible for the non-overlapping property, or should Compress the
// result to restore it.
//
// An empty sequence is rejected with ErrNoComponents.
func FromComponents(xs ...float64) (Expansion, error) {
	if len(xs) == 0 {
		return Expansion{}, ErrNoComponents
	}
	comp := make([]float64, len(xs))
	copy(comp, xs)
	return Expansion{comp: comp}, nil
}

// Lift creates a batch of single-component expansions, one per input value
// and in input order.
func Lift(values ...float64) []Expansion {
	es := make([]Expansion, len(values))
	for i, v := range values {
		es[i] = From(v)
	}
	return es
}

// Len returns the number of components.
func (e Expansion) Len() int {
	return len(e.components())
}

// At returns component i, counting from the least significant.
func (e Expansion) At(i int) (float64, error) {
	comp := e.components()
	if i < 0 || i >= len(comp) {
		return 0, ErrIllegalArguments
	}
	return comp[i], nil
}

// Components returns a copy of the component sequence, least significant
// first. Mutating the returned slice does not affect the expansion.
func (e Expansion) Components() []float64 {
	comp := e.components()
	out := make([]float64, len(comp))
	copy(out, comp)
	return out
}

// Approx returns the best single-float approximation of the represented
// value: the most significant component. For compressed expansions the
// approximation is within one ulp of the exact value.
func (e Expansion) Approx() float64 {
	comp := e.components()
	return comp[len(comp)-1]
}

// IsZero reports whether the expansion represents exactly zero.
func (e Expansion) IsZero() bool {
	for _, x := range e.components() {
		if x != 0 {
			return false
		}
	}
	return true
}

// Range returns an iterator over the components in ascending order of
// magnitude.
func (e Expansion) Range() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range e.components() {
			if !yield(x) {
				return
			}
		}
	}
}

// EachComponent visits all components, least significant first.
//
// The callback receives each component and its index. Iteration stops at the
// first callback error and returns that error to the caller.
func (e Expansion) EachComponent(f func(int, float64) error) error {
	for i, x := range e.components() {
		if err := f(i, x); err != nil {
			return err
		}
	}
	return nil
}

// String returns a human-readable representation: all components in
// scientific notation, least significant first, joined by " + ".
func (e Expansion) String() string {
	var bf bytes.Buffer
	for i, x := range e.components() {
		if i > 0 {
			bf.WriteString(" + ")
		}
		bf.WriteString(strconv.FormatFloat(x, 'e', -1, 64))
	}
	return bf.String()
}
