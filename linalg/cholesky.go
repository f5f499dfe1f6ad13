package linalg

import (
	"github.com/RobeDM/LIBIRWLS/linalg/blas"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
)

// Cholesky factorizes the symmetric positive-definite matrix a in place,
// overwriting its lower triangle with the Cholesky factor L such that
// a = L*L^T. workers bounds the parallelism used for the row-block fan-outs
// inside the recursion; it is rounded down to a power of two internally.
// Cholesky returns ErrNotPositiveDefinite if a pivot is not strictly
// positive.
//
// The recursion splits a into
//
//	[ A11  .  ]
//	[ A21  A22]
//
// factorizes A11 first (a hard sequential prerequisite: A22's update reads
// the completed L11), then computes A21 <- A21*L11^-T and
// A22 <- A22 - A21*A21^T by fanning row blocks of A21/A22 out across
// workers, and finally recurses into A22. A22 genuinely depends on the
// finished A11 factor, so the two halves cannot run as independent
// subtrees; the worker count instead bounds the fan-out width of each
// step, which is where the actual parallelism in a block Cholesky lives.
func Cholesky(a View, workers int) error {
	n := a.Rows
	if n == 0 {
		return nil
	}
	if n <= blockThreshold || workers <= 1 {
		if err := blas.Dpotrf(a.asMatrix()); err != nil {
			return ErrNotPositiveDefinite
		}
		return nil
	}

	n1, n2 := splitDim(n)
	a11 := a.Sub(0, 0, n1, n1)
	a21 := a.Sub(n1, 0, n2, n1)
	a22 := a.Sub(n1, n1, n2, n2)

	if err := Cholesky(a11, workers); err != nil {
		return err
	}

	rowWorkers := workpool.Threads(workers, n2)
	if err := workpool.Do(rowWorkers, n2, func(lo, hi int) error {
		blas.DtrsmRightLowerTranspose(a11.asMatrix(), a21.Sub(lo, 0, hi-lo, n1).asMatrix())
		return nil
	}); err != nil {
		return err
	}

	if err := workpool.Do(rowWorkers, n2, func(lo, hi int) error {
		blas.DsyrkRowRange(-1, a21.asMatrix(), 1, a22.asMatrix(), lo, hi)
		return nil
	}); err != nil {
		return err
	}

	return Cholesky(a22, workers)
}
