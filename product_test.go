package expansions

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMulExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	rng := rand.New(rand.NewSource(401))
	for i := 0; i < 50; i++ {
		a := randomExpansion(t, rng, 3)
		b := randomExpansion(t, rng, 4)
		got := Mul(a, b)
		want := new(big.Float).SetPrec(refPrec).Mul(bigVal(a), bigVal(b))
		if want.Cmp(bigVal(got)) != 0 {
			t.Fatalf("multiplication is not exact for a=%v b=%v", a, b)
		}
	}
}

func TestMulSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	got := Mul(From(1.5), From(2))
	if got.Len() != 1 || got.Approx() != 3 {
		t.Fatalf("expected [3], got %v", got)
	}
	got = Mul(From(0.1), From(10))
	want := new(big.Float).SetPrec(refPrec).Mul(
		new(big.Float).SetPrec(refPrec).SetFloat64(0.1),
		new(big.Float).SetPrec(refPrec).SetFloat64(10))
	if want.Cmp(bigVal(got)) != 0 {
		t.Fatalf("0.1 * 10 is not exact: %v", got)
	}
}

func TestDistillExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	rng := rand.New(rand.NewSource(402))
	es := make([]Expansion, 9)
	want := new(big.Float).SetPrec(refPrec)
	for i := range es {
		es[i] = randomExpansion(t, rng, 3)
		want.Add(want, bigVal(es[i]))
	}
	got, err := Distill(es...)
	if err != nil {
		t.Fatalf("unexpected Distill error: %v", err)
	}
	if want.Cmp(bigVal(got)) != 0 {
		t.Fatalf("distillation is not exact")
	}
}

func TestDistillRejectsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expansions")
	defer teardown()

	_, err := Distill()
	if !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}
