package expansions

// Builder incrementally stages float64 values and finalizes them into a
// single exact expansion.
//
// Builder collects raw values and materializes the expansion only when
// Expansion() is called, distilling all staged values in one pass. This
// avoids repeated intermediate compression when accumulating many values.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	values []float64

	done  bool
	dirty bool
	exp   Expansion
}

// NewBuilder creates a new and empty expansion builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Expansion returns the compressed expansion built from all staged values.
//
// It is illegal to continue staging values after Expansion has been called,
// but Expansion may be called multiple times.
func (b *Builder) Expansion() Expansion {
	if b == nil {
		return Expansion{}
	}
	if b.dirty {
		b.exp = expansion(compress(distill(b.values)))
		b.dirty = false
	}
	b.done = true
	if b.exp.IsZero() {
		tracer().Debugf("expansion builder: expansion is zero")
	}
	return b.exp
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.values = nil
	b.done = false
	b.dirty = false
	b.exp = Expansion{}
}

// Append stages one or more values for the build.
func (b *Builder) Append(values ...float64) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	b.values = append(b.values, values...)
	b.dirty = true
	return nil
}

// AppendExpansion stages all components of e for the build. The exact value
// of e contributes to the built expansion.
func (b *Builder) AppendExpansion(e Expansion) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	b.values = append(b.values, e.components()...)
	b.dirty = true
	return nil
}
