// Package linalg implements the block-recursive parallel dense linear
// algebra layer: Cholesky factorization, lower-triangular inverse, SPD
// linear solve and block matrix products, all addressed through a View
// rather than six raw integers threaded through every call. The
// single-threaded leaf primitives live in the linalg/blas subpackage,
// keeping the block-recursive orchestration separate from the flat
// per-block kernels.
package linalg

import "gonum.org/v1/gonum/mat"

// View addresses a column-major dense submatrix in place: element (i, j)
// of the view is Data[Base+j*Stride+i]. Sub-views share the backing array
// with their parent, so writes through a View are visible to every other
// View over the same storage.
type View struct {
	Data   []float64
	Base   int
	Stride int
	Rows   int
	Cols   int
}

// NewView wraps a freshly allocated, densely packed rows x cols matrix.
func NewView(rows, cols int) View {
	return View{Data: make([]float64, rows*cols), Stride: rows, Rows: rows, Cols: cols}
}

// At returns the element at (i, j).
func (v View) At(i, j int) float64 {
	return v.Data[v.Base+j*v.Stride+i]
}

// Dims and T satisfy mat.Matrix, letting tests cross-check a View against
// gonum's dense implementation.
func (v View) Dims() (r, c int) { return v.Rows, v.Cols }

func (v View) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// Set stores value at (i, j).
func (v View) Set(i, j int, value float64) {
	v.Data[v.Base+j*v.Stride+i] = value
}

// Col returns the backing slice for column j, length Rows.
func (v View) Col(j int) []float64 {
	off := v.Base + j*v.Stride
	return v.Data[off : off+v.Rows]
}

// Sub returns a view over the rows x cols submatrix starting at (ro, co)
// of the receiver. Zero-sized submatrix dimensions are valid and the
// resulting view is a legitimate no-op operand.
func (v View) Sub(ro, co, rows, cols int) View {
	return View{
		Data:   v.Data,
		Base:   v.Base + co*v.Stride + ro,
		Stride: v.Stride,
		Rows:   rows,
		Cols:   cols,
	}
}

// Empty reports whether the view has zero rows or columns.
func (v View) Empty() bool {
	return v.Rows == 0 || v.Cols == 0
}

// ZeroUpper zeroes the strict upper triangle, used after an in-place
// Cholesky factorization to leave a clean lower-triangular factor.
func (v View) ZeroUpper() {
	for j := 1; j < v.Cols; j++ {
		for i := 0; i < j && i < v.Rows; i++ {
			v.Set(i, j, 0)
		}
	}
}

// splitDim splits n into two halves for recursive block partitioning; when
// n is odd the first half absorbs the extra element.
func splitDim(n int) (n1, n2 int) {
	n1 = (n + 1) / 2
	n2 = n - n1
	return
}
