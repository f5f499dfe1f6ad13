package blas

import (
	"errors"
	"math"
)

// ErrNotPositiveDefinite is returned by Dpotrf when a diagonal pivot is not
// strictly positive.
var ErrNotPositiveDefinite = errors.New("blas: matrix is not positive definite")

// Dpotrf factorizes the symmetric positive-definite matrix a in place,
// single-threaded, writing the lower-triangular Cholesky factor into a's
// lower triangle (the strict upper triangle is left untouched; callers
// that need it zeroed call View.ZeroUpper). This is the textbook
// "dot product" Cholesky algorithm, generalised from sparse rows to a
// dense submatrix.
func Dpotrf(a Matrix) error {
	n := a.Rows
	for j := 0; j < n; j++ {
		var sum float64
		for p := 0; p < j; p++ {
			sum += a.At(j, p) * a.At(j, p)
		}
		diag := a.At(j, j) - sum
		if diag <= 0 {
			return ErrNotPositiveDefinite
		}
		ljj := math.Sqrt(diag)
		a.Set(j, j, ljj)

		for i := j + 1; i < n; i++ {
			var s float64
			for p := 0; p < j; p++ {
				s += a.At(i, p) * a.At(j, p)
			}
			a.Set(i, j, (a.At(i, j)-s)/ljj)
		}
	}
	return nil
}
