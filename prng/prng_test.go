package prng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(0)
	b := New(0)
	for i := 0; i < 10; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}
}

func TestSampleWithoutReplacementDistinct(t *testing.T) {
	s := New(0)
	idx := s.SampleWithoutReplacement(50, 10)
	if len(idx) != 10 {
		t.Fatalf("len(idx) = %d, want 10", len(idx))
	}
	seen := make(map[int]bool, 10)
	for _, i := range idx {
		if i < 0 || i >= 50 {
			t.Fatalf("index %d out of range", i)
		}
		if seen[i] {
			t.Fatalf("duplicate index %d", i)
		}
		seen[i] = true
	}
}

func TestSampleWithoutReplacementPanicsOnOversample(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic sampling more elements than the population")
		}
	}()
	New(0).SampleWithoutReplacement(5, 6)
}
