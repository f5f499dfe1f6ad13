package blas

// Matrix is the common dense, column-major submatrix handle passed between
// the single-threaded primitives in this package: a small, self contained
// addressing struct that the owning package (linalg.View) wraps with a
// richer API.
type Matrix struct {
	Data   []float64
	Base   int
	Stride int
	Rows   int
	Cols   int
}

// At returns the element at (i, j).
func (m Matrix) At(i, j int) float64 {
	return m.Data[m.Base+j*m.Stride+i]
}

// Set stores value at (i, j).
func (m Matrix) Set(i, j int, value float64) {
	m.Data[m.Base+j*m.Stride+i] = value
}
