package semiparam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
)

func clusteredDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	var samples []dataset.Sample
	var labels []float64
	for i := 0; i < 10; i++ {
		x := float64(i)
		samples = append(samples, dataset.NewSample([]int{0, 1}, []float64{5 + x*0.1, 5 + x*0.1}))
		labels = append(labels, 1)
		samples = append(samples, dataset.NewSample([]int{0, 1}, []float64{-5 - x*0.1, -5 - x*0.1}))
		labels = append(labels, -1)
	}
	ds, err := dataset.Build(samples, labels, 2, true)
	require.NoError(t, err)
	return ds
}

func decision(ds *dataset.Dataset, kf kernel.Func, centroids []int, beta []float64, x dataset.Sample) float64 {
	var f float64
	for c, idx := range centroids {
		f += beta[c] * kf.Eval(ds.Sample(idx), x)
	}
	return f
}

func TestTrainSeparatesClusteredData(t *testing.T) {
	ds := clusteredDataset(t)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.3}
	posAvg, negAvg := ds.ClassAverageIndexes()
	centroids := []int{posAvg, negAvg, 0, 1, ds.N() - 1, ds.N() - 2}

	props := Properties{C: 10, Threads: 2, Kernel: kf}
	result, err := Train(ds, centroids, props, nil)
	require.NoError(t, err)
	require.Len(t, result.Beta, len(centroids))

	for i := 0; i < ds.N(); i++ {
		f := decision(ds, kf, centroids, result.Beta, ds.Sample(i))
		y := ds.Label(i)
		require.NotEqualf(t, math.Signbit(f), y > 0, "sample %d: label %v, decision value %v has wrong sign", i, y, f)
	}
}

func TestTrainReturnsFiniteBeta(t *testing.T) {
	ds := clusteredDataset(t)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.3}
	posAvg, negAvg := ds.ClassAverageIndexes()
	centroids := []int{posAvg, negAvg, 2, 3}

	result, err := Train(ds, centroids, Properties{C: 1, Threads: 4, Kernel: kf}, nil)
	require.NoError(t, err)
	for i, b := range result.Beta {
		require.Falsef(t, math.IsNaN(b) || math.IsInf(b, 0), "Beta[%d] = %v, want finite", i, b)
	}
}
