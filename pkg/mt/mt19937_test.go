package mt

import "testing"

func TestSameSeedProducesSameSequence(t *testing.T) {
	a := New(0xdeadbeef)
	b := New(0xdeadbeef)
	for i := 0; i < 1000; i++ {
		av, bv := a.Uint32(), b.Uint32()
		if av != bv {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, av, bv)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected sequences from different seeds to diverge")
	}
}

func TestIntnStaysInBounds(t *testing.T) {
	r := New(42)
	for i := 0; i < 1000; i++ {
		v := r.Intn(26)
		if v < 0 || v >= 26 {
			t.Fatalf("Intn(26) out of bounds: %d", v)
		}
	}
}
