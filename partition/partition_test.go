package partition

import (
	"testing"

	"github.com/RobeDM/LIBIRWLS/prng"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		beta, e, y, c float64
		want          Group
	}{
		{beta: 1.0, e: 0, y: 1, c: 1.0, want: S3},
		{beta: -1.0, e: 0, y: -1, c: 1.0, want: S3},
		{beta: 0, e: -1, y: 1, c: 1.0, want: S2},
		{beta: 0.5, e: 1, y: 1, c: 1.0, want: S1},
	}
	for _, tc := range cases {
		if got := Classify(tc.beta, tc.e, tc.y, tc.c); got != tc.want {
			t.Errorf("Classify(%v,%v,%v,%v) = %v, want %v", tc.beta, tc.e, tc.y, tc.c, got, tc.want)
		}
	}
}

func TestRebuildCountsSumToN(t *testing.T) {
	beta := []float64{0, 1, 0.5, -1, 0}
	e := []float64{-1, 0, 1, 0, -2}
	y := []float64{1, 1, 1, -1, -1}
	p := Rebuild(beta, e, y, 1.0)
	if p.Len() != len(beta) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(beta))
	}
}

func TestSelectWorkingSetReservesSixSlots(t *testing.T) {
	// Two samples per bucket, one y=-1 and one y=+1, all violating KKT.
	beta := []float64{-1, 1, 0, 0, -0.5, 0.5} // signed: bounded means beta == y*C
	y := []float64{-1, 1, -1, 1, -1, 1}
	c := 1.0
	e := []float64{
		-1.0 / y[0], // bounded, violating (e*y << -threshold)
		-1.0 / y[1],
		1.0 / y[2], // zero multiplier, violating (e*y >> threshold)
		1.0 / y[3],
		1.0 / y[4], // unbounded, violating (|e*y| >> threshold)
		-1.0 / y[5],
	}
	rng := prng.New(0)
	ws := SelectWorkingSet(beta, e, y, c, 6, rng)
	if len(ws.WS) != 6 {
		t.Fatalf("len(WS) = %d, want 6 (all six slots reserved)", len(ws.WS))
	}
}

func TestSelectWorkingSetRespectsMaxSize(t *testing.T) {
	n := 50
	beta := make([]float64, n)
	e := make([]float64, n)
	y := make([]float64, n)
	for i := range beta {
		if i%2 == 0 {
			y[i] = 1
		} else {
			y[i] = -1
		}
		e[i] = 1 // zero bucket: the y=+1 half violates, the y=-1 half does not
	}
	rng := prng.New(0)
	ws := SelectWorkingSet(beta, e, y, 1.0, 10, rng)
	if len(ws.WS) > 10 {
		t.Fatalf("len(WS) = %d, exceeds maxSize 10", len(ws.WS))
	}
	if len(ws.WS)+len(ws.SIn) != n {
		t.Fatalf("WS+SIn = %d, want %d", len(ws.WS)+len(ws.SIn), n)
	}
}
