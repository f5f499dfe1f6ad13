package blas

// Dpotrs solves A*X = B given A's Cholesky factor l (lower triangular,
// A = l*l^T), overwriting b with the solution X. Forward substitution
// solves L*y = b, backward substitution solves L^T*x = y.
func Dpotrs(l Matrix, b Matrix) {
	n := l.Rows
	for col := 0; col < b.Cols; col++ {
		// forward: L*y = b
		for i := 0; i < n; i++ {
			sum := b.At(i, col)
			for p := 0; p < i; p++ {
				sum -= l.At(i, p) * b.At(p, col)
			}
			b.Set(i, col, sum/l.At(i, i))
		}
		// backward: L^T*x = y
		for i := n - 1; i >= 0; i-- {
			sum := b.At(i, col)
			for p := i + 1; p < n; p++ {
				sum -= l.At(p, i) * b.At(p, col)
			}
			b.Set(i, col, sum/l.At(i, i))
		}
	}
}
