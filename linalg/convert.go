package linalg

import "github.com/RobeDM/LIBIRWLS/linalg/blas"

// asMatrix hands the view's addressing off to the single-threaded blas
// leaves, which deliberately carry their own, identically shaped Matrix
// type to avoid an import cycle back into this package.
func (v View) asMatrix() blas.Matrix {
	return blas.Matrix{Data: v.Data, Base: v.Base, Stride: v.Stride, Rows: v.Rows, Cols: v.Cols}
}
