package linalg

import (
	"github.com/RobeDM/LIBIRWLS/linalg/blas"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
)

// SPDSolve solves a*X = b for a symmetric positive-definite a, overwriting
// a with its Cholesky factor and b with the solution X. workers bounds the
// fan-out used both by the Cholesky factorization and by the per-column
// forward/backward substitution pass: the right-hand-side columns of b are
// independent of one another, so they are split across workers directly
// rather than through any further block recursion. SPDSolve returns
// ErrNotPositiveDefinite if the factorization fails.
func SPDSolve(a View, b View, workers int) error {
	if err := Cholesky(a, workers); err != nil {
		return err
	}

	colWorkers := workpool.Threads(workers, b.Cols)
	return workpool.Do(colWorkers, b.Cols, func(lo, hi int) error {
		chunk := b.Sub(0, lo, b.Rows, hi-lo)
		blas.Dpotrs(a.asMatrix(), chunk.asMatrix())
		return nil
	})
}
