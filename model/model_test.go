package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
)

func tinyDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	samples := []dataset.Sample{
		dataset.NewSample([]int{0, 1}, []float64{1, 1}),
		dataset.NewSample([]int{0}, []float64{-1}),
		dataset.NewSample([]int{0, 1}, []float64{2, 0}),
	}
	labels := []float64{1, -1, 1}
	ds, err := dataset.Build(samples, labels, 2, true)
	require.NoError(t, err)
	return ds
}

func TestAssembleAndDecision(t *testing.T) {
	ds := tinyDataset(t)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.5}

	m, err := Assemble(ds, kf, []int{0, 1}, []float64{2, -3}, 0.1)
	require.NoError(t, err)
	require.Len(t, m.Vectors, 2)

	want := 0.1 + 2*kf.Eval(ds.Sample(0), ds.Sample(0)) - 3*kf.Eval(ds.Sample(1), ds.Sample(0))
	got := m.Decision(ds.Sample(0))
	require.InDelta(t, want, got, 1e-12)
}

func TestAssembleRejectsLengthMismatch(t *testing.T) {
	ds := tinyDataset(t)
	kf := kernel.Func{Type: kernel.Linear}
	_, err := Assemble(ds, kf, []int{0, 1}, []float64{1}, 0)
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ds := tinyDataset(t)
	kf := kernel.Func{Type: kernel.RBF, Gamma: 0.7}
	m, err := Assemble(ds, kf, []int{0, 1, 2}, []float64{1.5, -2.5, 0.5}, -0.3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m))

	got, err := Load(&buf)
	require.NoError(t, err)

	require.Equal(t, m.Gamma, got.Gamma)
	require.Equal(t, m.Bias, got.Bias)
	require.Equal(t, m.Dim, got.Dim)
	require.Equal(t, m.KernelType, got.KernelType)
	require.Equal(t, m.Sparse, got.Sparse)
	require.Len(t, got.Vectors, len(m.Vectors))

	for i := range m.Vectors {
		require.Equal(t, m.Weights[i], got.Weights[i])
		require.Equal(t, m.SqNorms[i], got.SqNorms[i])
		require.Equal(t, m.Vectors[i].Index, got.Vectors[i].Index)
		require.Equal(t, m.Vectors[i].Value, got.Vectors[i].Value)
	}

	x := ds.Sample(0)
	require.InDelta(t, m.Decision(x), got.Decision(x), 1e-12)
}
