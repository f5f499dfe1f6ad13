package model

import (
	"fmt"
	"math"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
)

// Model is an owned, inference-ready classifier: every referenced training
// sample's feature sequence has been copied into Vectors, independent of
// the Dataset it was trained from.
type Model struct {
	Gamma      float64
	Bias       float64
	Dim        int
	KernelType kernel.Type
	Sparse     bool

	// Weights and SqNorms are parallel to Vectors: Weights[i] is the
	// signed multiplier for Vectors[i] (already y_i*alpha_i for a full
	// model, or the raw semiparametric weight for a reduced one), and
	// SqNorms[i] is Vectors[i]'s cached ||x||^2.
	Weights []float64
	SqNorms []float64
	Vectors []dataset.Sample
}

// Assemble builds an owned Model from a trained beta vector, bias, and the
// dataset indices of its nonzero support vectors or centroids, per spec
// section 4.6. indices and weights must have the same length.
func Assemble(ds *dataset.Dataset, kf kernel.Func, indices []int, weights []float64, bias float64) (*Model, error) {
	if len(indices) != len(weights) {
		return nil, fmt.Errorf("model: %w: %d indices but %d weights", dataset.ErrProgramming, len(indices), len(weights))
	}

	vectors := make([]dataset.Sample, len(indices))
	sqnorms := make([]float64, len(indices))
	w := make([]float64, len(indices))
	for i, idx := range indices {
		s := ds.Sample(idx)
		vectors[i] = s.Clone()
		sqnorms[i] = s.SqNorm
		w[i] = weights[i]
	}

	return &Model{
		Gamma:      kf.Gamma,
		Bias:       bias,
		Dim:        ds.Dim(),
		KernelType: kf.Type,
		Sparse:     ds.Sparse(),
		Weights:    w,
		SqNorms:    sqnorms,
		Vectors:    vectors,
	}, nil
}

// Decision evaluates f(x) = bias + sum_i weights[i]*K(vectors[i], x), the
// same decision function solver.Train's working-set updates are derived
// from.
func (m *Model) Decision(x dataset.Sample) float64 {
	f := m.Bias
	for i, v := range m.Vectors {
		f += m.Weights[i] * m.evalKernel(v, m.SqNorms[i], x)
	}
	return f
}

func (m *Model) evalKernel(v dataset.Sample, vSqNorm float64, x dataset.Sample) float64 {
	inner := dataset.Dot(v, x)
	if m.KernelType == kernel.Linear {
		return inner
	}
	sq := vSqNorm + x.SqNorm - 2*inner
	if sq < 0 {
		sq = 0
	}
	return math.Exp(-m.Gamma * sq)
}

// PredictHard returns the sign of the decision function, {-1, +1}.
func (m *Model) PredictHard(x dataset.Sample) float64 {
	if m.Decision(x) >= 0 {
		return 1
	}
	return -1
}

// PredictSoft returns the raw decision function value.
func (m *Model) PredictSoft(x dataset.Sample) float64 {
	return m.Decision(x)
}
