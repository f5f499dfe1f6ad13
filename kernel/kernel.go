// Package kernel implements the RBF and linear kernel functions used by
// every other IRWLS component, operating directly on dataset.Sample values
// and their cached squared norms. It is a direct translation of
// original_source/src/kernels.c's kernelFunction/kernelTest.
package kernel

import (
	"math"

	"github.com/RobeDM/LIBIRWLS/dataset"
)

// Type selects the kernel function. The zero value is Linear, matching the
// model file's wire encoding (0=linear, 1=rbf).
type Type int

const (
	Linear Type = 0
	RBF    Type = 1
)

// Func evaluates a kernel between two samples given their cached squared
// norms. Implementations must treat K(x,x) as exactly 1 for RBF and
// ||x||^2 for linear.
type Func struct {
	Type  Type
	Gamma float64
}

// Eval computes K(x, y) using the sparse two-pointer merge dot product.
func (f Func) Eval(x, y dataset.Sample) float64 {
	if f.Type == Linear {
		return dataset.Dot(x, y)
	}
	inner := dataset.Dot(x, y)
	sq := x.SqNorm + y.SqNorm - 2*inner
	if sq < 0 {
		sq = 0
	}
	return math.Exp(-f.Gamma * sq)
}

// EvalDense computes K(x, y) using a direct index walk instead of a merge,
// for datasets where Dataset.Sparse() is false and every sample shares the
// same dense layout up to dim.
func (f Func) EvalDense(x, y dataset.Sample, dim int) float64 {
	if f.Type == Linear {
		return dataset.DotDense(x, y, dim)
	}
	inner := dataset.DotDense(x, y, dim)
	sq := x.SqNorm + y.SqNorm - 2*inner
	if sq < 0 {
		sq = 0
	}
	return math.Exp(-f.Gamma * sq)
}

// Self returns K(x,x) without doing any arithmetic: 1 for RBF, ||x||^2 for
// linear. Callers MUST use this rather than Eval(x, x) so that floating
// point error never lets a diagonal kernel value drift from its exact
// value.
func (f Func) Self(x dataset.Sample) float64 {
	if f.Type == Linear {
		return x.SqNorm
	}
	return 1
}
