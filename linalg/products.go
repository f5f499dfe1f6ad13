package linalg

import (
	"github.com/RobeDM/LIBIRWLS/linalg/blas"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
)

// Eight block product variants, one per transpose/triangular combination:
// NN/NT/TN/AAT on general dense operands, LN/LTN/NL/NLT on one
// lower-triangular operand. The solver, SGMA and the Cholesky recursion do
// not call them; Cholesky uses the linalg/blas leaves directly.
// Every variant fans row-blocks of the result out across workers and
// delegates each block to the matching linalg/blas leaf.

// NN computes c <- alpha*a*b + beta*c.
func NN(workers int, alpha float64, a, b View, beta float64, c View) {
	generalProduct(workers, false, false, alpha, a, b, beta, c)
}

// NT computes c <- alpha*a*b^T + beta*c.
func NT(workers int, alpha float64, a, b View, beta float64, c View) {
	generalProduct(workers, false, true, alpha, a, b, beta, c)
}

// TN computes c <- alpha*a^T*b + beta*c.
func TN(workers int, alpha float64, a, b View, beta float64, c View) {
	generalProduct(workers, true, false, alpha, a, b, beta, c)
}

func generalProduct(workers int, transA, transB bool, alpha float64, a, b View, beta float64, c View) {
	rowWorkers := workpool.Threads(workers, c.Rows)
	_ = workpool.Do(rowWorkers, c.Rows, func(lo, hi int) error {
		var aChunk View
		if transA {
			aChunk = a.Sub(0, lo, a.Rows, hi-lo)
		} else {
			aChunk = a.Sub(lo, 0, hi-lo, a.Cols)
		}
		blas.Dgemm(transA, transB, alpha, aChunk.asMatrix(), b.asMatrix(), beta, c.Sub(lo, 0, hi-lo, c.Cols).asMatrix())
		return nil
	})
}

// AAT computes c <- alpha*a*a^T + beta*c over the lower triangle of c only,
// the symmetric rank-k update, fanned out over row blocks of c.
func AAT(workers int, alpha float64, a View, beta float64, c View) {
	rowWorkers := workpool.Threads(workers, c.Rows)
	_ = workpool.Do(rowWorkers, c.Rows, func(lo, hi int) error {
		blas.DsyrkRowRange(alpha, a.asMatrix(), beta, c.asMatrix(), lo, hi)
		return nil
	})
}

// LN computes c <- alpha*l*b, where l is lower triangular.
func LN(workers int, alpha float64, l, b View, c View) {
	rowWorkers := workpool.Threads(workers, c.Rows)
	_ = workpool.Do(rowWorkers, c.Rows, func(lo, hi int) error {
		blas.LNProductRowRange(alpha, l.asMatrix(), b.asMatrix(), c.asMatrix(), lo, hi)
		return nil
	})
}

// LTN computes c <- alpha*l^T*b, where l is lower triangular.
func LTN(workers int, alpha float64, l, b View, c View) {
	rowWorkers := workpool.Threads(workers, c.Rows)
	_ = workpool.Do(rowWorkers, c.Rows, func(lo, hi int) error {
		blas.LTNProductRowRange(alpha, l.asMatrix(), b.asMatrix(), c.asMatrix(), lo, hi)
		return nil
	})
}

// NL computes c <- alpha*a*l, where l is lower triangular.
func NL(workers int, alpha float64, a, l View, c View) {
	rowWorkers := workpool.Threads(workers, c.Rows)
	_ = workpool.Do(rowWorkers, c.Rows, func(lo, hi int) error {
		blas.NLProductRowRange(alpha, a.asMatrix(), l.asMatrix(), c.asMatrix(), lo, hi)
		return nil
	})
}

// NLT computes c <- alpha*a*l^T, where l is lower triangular.
func NLT(workers int, alpha float64, a, l View, c View) {
	rowWorkers := workpool.Threads(workers, c.Rows)
	_ = workpool.Do(rowWorkers, c.Rows, func(lo, hi int) error {
		blas.NLTProductRowRange(alpha, a.asMatrix(), l.asMatrix(), c.asMatrix(), lo, hi)
		return nil
	})
}
