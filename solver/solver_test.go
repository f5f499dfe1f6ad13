package solver

import (
	"math"
	"testing"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
)

// linearlySeparable returns a tiny two-cluster dataset, trivially separable
// by a linear classifier, used to sanity-check that Train converges to a
// sensible decision function rather than testing IRWLS numerics in depth.
func linearlySeparable(t *testing.T) *dataset.Dataset {
	t.Helper()
	samples := []dataset.Sample{
		dataset.NewSample([]int{0, 1}, []float64{2, 2}),
		dataset.NewSample([]int{0, 1}, []float64{3, 1}),
		dataset.NewSample([]int{0, 1}, []float64{2.5, 2.5}),
		dataset.NewSample([]int{0, 1}, []float64{-2, -2}),
		dataset.NewSample([]int{0, 1}, []float64{-3, -1}),
		dataset.NewSample([]int{0, 1}, []float64{-2.5, -2.5}),
	}
	labels := []float64{1, 1, 1, -1, -1, -1}
	ds, err := dataset.Build(samples, labels, 2, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ds
}

func decision(ds *dataset.Dataset, kf kernel.Func, beta []float64, x dataset.Sample) float64 {
	n := ds.N()
	f := beta[n]
	for i := 0; i < n; i++ {
		if beta[i] == 0 {
			continue
		}
		f += beta[i] * kf.Eval(ds.Sample(i), x)
	}
	return f
}

func TestTrainSeparatesLinearlySeparableData(t *testing.T) {
	ds := linearlySeparable(t)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.5}
	props := Properties{
		C:              10,
		Eta:            1e-4,
		Threads:        2,
		MaxWorkingSize: ds.N(),
		Kernel:         kf,
		Seed:           0,
	}

	result, err := Train(ds, props, nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(result.Beta) != ds.N()+1 {
		t.Fatalf("len(Beta) = %d, want %d", len(result.Beta), ds.N()+1)
	}

	for i := 0; i < ds.N(); i++ {
		f := decision(ds, kf, result.Beta, ds.Sample(i))
		y := ds.Label(i)
		if math.Signbit(f) == (y > 0) {
			t.Errorf("sample %d: label %v, decision value %v has wrong sign", i, y, f)
		}
	}
}
