package linalg

import (
	"github.com/RobeDM/LIBIRWLS/linalg/blas"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
)

// TriangleInverse inverts the lower-triangular matrix a in place, so that
// on return a holds a^-1. workers bounds the fan-out width used inside the
// recursion. Given
//
//	L = [ L11  .  ]
//	    [ L21  L22]
//
// the inverse is
//
//	L^-1 = [     L11^-1          .   ]
//	       [ -L22^-1*L21*L11^-1  L22^-1]
//
// L11^-1 and L22^-1 are computed by independent recursive calls (they share
// no data, so they run concurrently), and the off-diagonal block is formed
// from a scratch buffer holding L21*L11^-1 before the final
// -L22^-1 * (that product) multiply, avoiding aliasing between the read of
// L21 and the write into the same region.
func TriangleInverse(a View, workers int) {
	n := a.Rows
	if n == 0 {
		return
	}
	if n <= blockThreshold || workers <= 1 {
		blas.Dtrtri(a.asMatrix())
		return
	}

	n1, n2 := splitDim(n)
	l11 := a.Sub(0, 0, n1, n1)
	l21 := a.Sub(n1, 0, n2, n1)
	l22 := a.Sub(n1, n1, n2, n2)

	half := workpool.Threads(workers, 2)
	_ = workpool.Do(half, 2, func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			if k == 0 {
				TriangleInverse(l11, workers/half+1)
			} else {
				TriangleInverse(l22, workers/half+1)
			}
		}
		return nil
	})

	arena := NewArena()
	defer arena.Release()
	tmp := View{Data: arena.scratch(n2 * n1), Stride: n2, Rows: n2, Cols: n1}

	rowWorkers := workpool.Threads(workers, n2)
	_ = workpool.Do(rowWorkers, n2, func(lo, hi int) error {
		chunk := tmp.Sub(lo, 0, hi-lo, n1)
		blas.Dgemm(false, false, 1, l21.Sub(lo, 0, hi-lo, n1).asMatrix(), l11.asMatrix(), 0, chunk.asMatrix())
		return nil
	})

	_ = workpool.Do(rowWorkers, n2, func(lo, hi int) error {
		blas.Dgemm(false, false, -1, l22.Sub(lo, 0, hi-lo, n2).asMatrix(), tmp.asMatrix(), 0, l21.Sub(lo, 0, hi-lo, n1).asMatrix())
		return nil
	})
}
