package expansions

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// refPrec is generous enough to hold any exact value occurring in these
// tests without rounding.
const refPrec = 2000

// bigVal returns the exact sum of an expansion's components as a reference
// value.
func bigVal(e Expansion) *big.Float {
	sum := new(big.Float).SetPrec(refPrec)
	for _, x := range e.Components() {
		sum.Add(sum, new(big.Float).SetPrec(refPrec).SetFloat64(x))
	}
	return sum
}

func randomValue(rng *rand.Rand) float64 {
	return math.Ldexp(rng.Float64()*2-1, rng.Intn(60)-30)
}

// randomExpansion builds a valid non-overlapping expansion from n random
// values of widely spread magnitudes.
func randomExpansion(t *testing.T, rng *rand.Rand, n int) Expansion {
	t.Helper()
	b := NewBuilder()
	for i := 0; i < n; i++ {
		if err := b.Append(randomValue(rng)); err != nil {
			t.Fatalf("cannot stage random value: %v", err)
		}
	}
	return b.Expansion()
}

func sameComponents(a, b Expansion) bool {
	ac, bc := a.Components(), b.Components()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}

func TestFromComponentsRejectsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	_, err := FromComponents()
	if !errors.Is(err, ErrNoComponents) {
		t.Fatalf("expected ErrNoComponents, got %v", err)
	}
}

func TestZeroValueExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	var e Expansion
	if e.Len() != 1 {
		t.Errorf("zero value should have one component, has %d", e.Len())
	}
	if e.Approx() != 0 {
		t.Errorf("zero value should approximate 0, is %v", e.Approx())
	}
	if !e.IsZero() {
		t.Errorf("zero value should report IsZero")
	}
	if e.String() != "0e+00" {
		t.Errorf("unexpected rendering of zero value: %q", e.String())
	}
}

func TestFromComponentsCopiesInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	src := []float64{1.5, 1e10}
	e, err := FromComponents(src...)
	if err != nil {
		t.Fatalf("unexpected FromComponents error: %v", err)
	}
	src[0] = 99
	if c, _ := e.At(0); c != 1.5 {
		t.Errorf("expansion should not alias source slice, got %v", c)
	}
	comp := e.Components()
	comp[1] = -1
	if e.Approx() != 1e10 {
		t.Errorf("Components should return a copy, Approx now %v", e.Approx())
	}
}

func TestLift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	es := Lift(1, 2, 3)
	if len(es) != 3 {
		t.Fatalf("expected 3 expansions, got %d", len(es))
	}
	for i, e := range es {
		if e.Len() != 1 || e.Approx() != float64(i+1) {
			t.Errorf("lifted expansion %d is %v", i, e)
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	e := From(1)
	if _, err := e.At(1); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if _, err := e.At(-1); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestStringRendersAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	e, err := FromComponents(0.5, 1e10)
	if err != nil {
		t.Fatalf("unexpected FromComponents error: %v", err)
	}
	if e.String() != "5e-01 + 1e+10" {
		t.Errorf("unexpected rendering: %q", e.String())
	}
}

func TestRangeAndEachComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	e, err := FromComponents(1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected FromComponents error: %v", err)
	}
	var got []float64
	for x := range e.Range() {
		got = append(got, x)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("unexpected Range sequence: %v", got)
	}
	boom := errors.New("boom")
	cnt := 0
	err = e.EachComponent(func(i int, x float64) error {
		cnt++
		if i == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error to propagate, got %v", err)
	}
	if cnt != 2 {
		t.Errorf("iteration should stop at first error, visited %d", cnt)
	}
}
