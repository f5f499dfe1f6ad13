package blas

// Dtrtri inverts the lower-triangular matrix a in place, single-threaded.
// Column j of the inverse is obtained by forward-substituting e_j through
// the already-computed columns 0..j-1.
func Dtrtri(a Matrix) {
	n := a.Rows
	for j := 0; j < n; j++ {
		ajj := a.At(j, j)
		inv := 1 / ajj
		a.Set(j, j, inv)
		for i := j + 1; i < n; i++ {
			var sum float64
			for p := j; p < i; p++ {
				sum += a.At(i, p) * a.At(p, j)
			}
			a.Set(i, j, -sum/a.At(i, i))
		}
	}
}
