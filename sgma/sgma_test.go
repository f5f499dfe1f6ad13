package sgma

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
	"github.com/RobeDM/LIBIRWLS/prng"
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

func requireDistinctInRange(t *testing.T, idx []int, n int) {
	t.Helper()
	seen := make(map[int]bool)
	for _, i := range idx {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, n)
		require.Falsef(t, seen[i], "index %d selected twice", i)
		seen[i] = true
	}
}

func TestSelectRandomReturnsDistinctIndexesInRange(t *testing.T) {
	ds := clusteredDataset(t)
	rng := prng.New(1)
	idx, err := Select(ds, kernel.Func{Type: kernel.Linear}, Random, 6, 2, rng)
	require.NoError(t, err)
	require.Len(t, idx, 6)
	requireDistinctInRange(t, idx, ds.N())
}

func TestSelectGreedyRejectsLinearKernel(t *testing.T) {
	ds := clusteredDataset(t)
	rng := prng.New(1)
	_, err := Select(ds, kernel.Func{Type: kernel.Linear}, Greedy, 4, 2, rng)
	require.ErrorIs(t, err, ErrLinearKernelUnsupported)
}

func TestSelectGreedyReturnsDistinctIndexesInRange(t *testing.T) {
	ds := clusteredDataset(t)
	rng := prng.New(1)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.3}
	idx, err := Select(ds, kf, Greedy, 6, 2, rng)
	require.NoError(t, err)
	require.Len(t, idx, 6)
	// Greedy starts from the two class-average samples at N and N+1.
	requireDistinctInRange(t, idx, ds.N()+2)
}

func TestSelectGreedySingleWorkerMatchesMultiWorker(t *testing.T) {
	ds := clusteredDataset(t)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.3}

	idxSeq, err := Select(ds, kf, Greedy, 5, 1, prng.New(42))
	require.NoError(t, err)
	idxPar, err := Select(ds, kf, Greedy, 5, 4, prng.New(42))
	require.NoError(t, err)
	require.Equal(t, idxSeq, idxPar)
}
