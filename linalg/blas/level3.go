package blas

// Dgemm computes C <- alpha*op(A)*op(B) + beta*C, where op(X) is X or X^T
// depending on transA/transB. This is the single-threaded leaf that every
// parallel block product in linalg eventually delegates to.
func Dgemm(transA, transB bool, alpha float64, a Matrix, b Matrix, beta float64, c Matrix) {
	m, n := c.Rows, c.Cols
	var k int
	if transA {
		k = a.Rows
	} else {
		k = a.Cols
	}

	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var sum float64
			if alpha != 0 {
				for p := 0; p < k; p++ {
					var av, bv float64
					if transA {
						av = a.At(p, i)
					} else {
						av = a.At(i, p)
					}
					if transB {
						bv = b.At(j, p)
					} else {
						bv = b.At(p, j)
					}
					sum += av * bv
				}
				sum *= alpha
			}
			if beta == 0 {
				c.Set(i, j, sum)
			} else {
				c.Set(i, j, sum+beta*c.At(i, j))
			}
		}
	}
}

// Dsyrk computes C <- alpha*A*A^T + beta*C over the lower triangle of C
// only, the symmetric rank-k update of the form the Cholesky block
// recursion's Schur complement needs (A22 <- A22 - A21*A21^T); the
// recursion itself calls the row-ranged DsyrkRowRange below.
func Dsyrk(alpha float64, a Matrix, beta float64, c Matrix) {
	n, k := c.Rows, a.Cols
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			var sum float64
			if alpha != 0 {
				for p := 0; p < k; p++ {
					sum += a.At(i, p) * a.At(j, p)
				}
				sum *= alpha
			}
			if beta == 0 {
				c.Set(i, j, sum)
			} else {
				c.Set(i, j, sum+beta*c.At(i, j))
			}
		}
	}
}

// DsyrkRowRange computes C[i,j] <- alpha*sum_p A[i,p]*A[j,p] + beta*C[i,j]
// for rows i in [lo, hi) and columns j in [0, i], leaving the rest of C
// untouched. a and c share the same row count n; only the output row range
// is restricted, so independent calls with disjoint [lo, hi) ranges over
// the same a and c are safe to run concurrently. This is the per-row-block
// leaf that the parallel Cholesky's Schur complement update fans out across
// workers.
func DsyrkRowRange(alpha float64, a Matrix, beta float64, c Matrix, lo, hi int) {
	k := a.Cols
	for i := lo; i < hi; i++ {
		for j := 0; j <= i; j++ {
			var sum float64
			if alpha != 0 {
				for p := 0; p < k; p++ {
					sum += a.At(i, p) * a.At(j, p)
				}
				sum *= alpha
			}
			if beta == 0 {
				c.Set(i, j, sum)
			} else {
				c.Set(i, j, sum+beta*c.At(i, j))
			}
		}
	}
}

// DtrsmRightLowerTranspose solves B <- B * L^-T in place, where L is the
// rows x rows lower-triangular matrix l. This is the "A21 <- A21*L11^-T"
// step of the block Cholesky recursion.
func DtrsmRightLowerTranspose(l Matrix, b Matrix) {
	n := l.Rows
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < n; j++ {
			sum := b.At(i, j)
			for p := 0; p < j; p++ {
				sum -= b.At(i, p) * l.At(j, p)
			}
			b.Set(i, j, sum/l.At(j, j))
		}
	}
}

// DtrmmLeftLower computes B <- alpha * L * B in place, where L is a
// rows(L) x rows(L) lower-triangular matrix.
func DtrmmLeftLower(alpha float64, l Matrix, b Matrix) {
	n := l.Rows
	for j := 0; j < b.Cols; j++ {
		for i := n - 1; i >= 0; i-- {
			var sum float64
			for p := 0; p <= i; p++ {
				sum += l.At(i, p) * b.At(p, j)
			}
			b.Set(i, j, alpha*sum)
		}
	}
}

// LNProductRowRange computes C[i,j] <- alpha*sum_{p<=i} L[i,p]*B[p,j] for
// rows i in [lo, hi), the "lower-triangular times general matrix" product
// (L*B), writing into a c distinct from l and b. Chunked by output row
// range so disjoint [lo, hi) calls are safe to run concurrently.
func LNProductRowRange(alpha float64, l Matrix, b Matrix, c Matrix, lo, hi int) {
	n := b.Cols
	for i := lo; i < hi; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p <= i; p++ {
				sum += l.At(i, p) * b.At(p, j)
			}
			c.Set(i, j, alpha*sum)
		}
	}
}

// LTNProductRowRange computes C[i,j] <- alpha*sum_{p>=i} L[p,i]*B[p,j] for
// rows i in [lo, hi): the "transpose of a lower-triangular matrix times a
// general matrix" product (L^T*B).
func LTNProductRowRange(alpha float64, l Matrix, b Matrix, c Matrix, lo, hi int) {
	n, k := b.Cols, l.Rows
	for i := lo; i < hi; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := i; p < k; p++ {
				sum += l.At(p, i) * b.At(p, j)
			}
			c.Set(i, j, alpha*sum)
		}
	}
}

// NLProductRowRange computes C[i,j] <- alpha*sum_{p>=j} A[i,p]*L[p,j] for
// rows i in [lo, hi): the "general matrix times a lower-triangular matrix"
// product (A*L).
func NLProductRowRange(alpha float64, a Matrix, l Matrix, c Matrix, lo, hi int) {
	n, k := l.Cols, l.Rows
	for i := lo; i < hi; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := j; p < k; p++ {
				sum += a.At(i, p) * l.At(p, j)
			}
			c.Set(i, j, alpha*sum)
		}
	}
}

// NLTProductRowRange computes C[i,j] <- alpha*sum_{p<=j} A[i,p]*L[j,p] for
// rows i in [lo, hi): the "general matrix times the transpose of a
// lower-triangular matrix" product (A*L^T).
func NLTProductRowRange(alpha float64, a Matrix, l Matrix, c Matrix, lo, hi int) {
	n := l.Rows
	for i := lo; i < hi; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p <= j; p++ {
				sum += a.At(i, p) * l.At(j, p)
			}
			c.Set(i, j, alpha*sum)
		}
	}
}
