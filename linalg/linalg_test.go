package linalg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/RobeDM/LIBIRWLS/linalg/blas"
)

// diagonallyDominant returns a column-major n x n symmetric, strictly
// diagonally dominant (hence SPD, by Gershgorin) matrix, used across the
// tests in this package as a cheap, deterministic stand-in for a random
// SPD matrix.
func diagonallyDominant(n int) View {
	v := NewView(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			val := 1.0 / float64(1+abs(i-j))
			v.Set(i, j, val)
		}
		v.Set(i, i, float64(2*n))
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func cloneView(v View) View {
	out := NewView(v.Rows, v.Cols)
	for j := 0; j < v.Cols; j++ {
		for i := 0; i < v.Rows; i++ {
			out.Set(i, j, v.At(i, j))
		}
	}
	return out
}

func maxAbsDiff(a, b View) float64 {
	var worst float64
	for j := 0; j < a.Cols; j++ {
		for i := 0; i < a.Rows; i++ {
			d := math.Abs(a.At(i, j) - b.At(i, j))
			if d > worst {
				worst = d
			}
		}
	}
	return worst
}

func TestViewMatchesMatDense(t *testing.T) {
	n := 4
	v := diagonallyDominant(n)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, v.At(i, j))
		}
	}
	if !mat.Equal(v, d) {
		t.Fatalf("View does not match equivalent mat.Dense")
	}
	if !mat.Equal(v.T(), d.T()) {
		t.Fatalf("View.T() does not match mat.Dense.T()")
	}
}

func TestCholeskySmallBaseCase(t *testing.T) {
	n := 5
	a := diagonallyDominant(n)
	orig := cloneView(a)
	if err := Cholesky(a, 1); err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	a.ZeroUpper()

	recon := NewView(n, n)
	blas.Dgemm(false, true, 1, a.asMatrix(), a.asMatrix(), 0, recon.asMatrix())
	if d := maxAbsDiff(recon, orig); d > 1e-8 {
		t.Fatalf("L*L^T does not reconstruct A, max diff %v", d)
	}
}

func TestCholeskyRecursiveBlocks(t *testing.T) {
	n := 140 // > blockThreshold, forces at least one recursive split
	a := diagonallyDominant(n)
	orig := cloneView(a)
	if err := Cholesky(a, 4); err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	a.ZeroUpper()

	recon := NewView(n, n)
	blas.Dgemm(false, true, 1, a.asMatrix(), a.asMatrix(), 0, recon.asMatrix())
	if d := maxAbsDiff(recon, orig); d > 1e-6 {
		t.Fatalf("L*L^T does not reconstruct A, max diff %v", d)
	}
}

func TestCholeskyRejectsNonPD(t *testing.T) {
	a := NewView(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 2)
	a.Set(1, 1, 1)
	if err := Cholesky(a, 1); err != ErrNotPositiveDefinite {
		t.Fatalf("Cholesky err = %v, want ErrNotPositiveDefinite", err)
	}
}

func TestTriangleInverseRoundTrip(t *testing.T) {
	n := 90
	a := diagonallyDominant(n)
	if err := Cholesky(a, 2); err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	a.ZeroUpper()
	l := cloneView(a)

	TriangleInverse(a, 2)

	prod := NewView(n, n)
	blas.Dgemm(false, false, 1, l.asMatrix(), a.asMatrix(), 0, prod.asMatrix())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(prod.At(i, j)-want) > 1e-6 {
				t.Fatalf("L*L^-1[%d][%d] = %v, want %v", i, j, prod.At(i, j), want)
			}
		}
	}
}

func TestSPDSolveResidual(t *testing.T) {
	for _, k := range []int{1, 2, 7, 8, 33} {
		n := 70
		a := diagonallyDominant(n)
		orig := cloneView(a)

		b := NewView(n, k)
		for j := 0; j < k; j++ {
			for i := 0; i < n; i++ {
				b.Set(i, j, float64((i+1)*(j+1)))
			}
		}
		origB := cloneView(b)

		if err := SPDSolve(a, b, 4); err != nil {
			t.Fatalf("k=%d: SPDSolve: %v", k, err)
		}

		resid := NewView(n, k)
		blas.Dgemm(false, false, 1, orig.asMatrix(), b.asMatrix(), 0, resid.asMatrix())
		if d := maxAbsDiff(resid, origB); d > 1e-6 {
			t.Fatalf("k=%d: residual too large: %v", k, d)
		}
	}
}

func TestNNMatchesDgemm(t *testing.T) {
	a := NewView(3, 2)
	for i, v := range []float64{1, 2, 3, 4, 5, 6} {
		a.Data[i] = v
	}
	b := NewView(2, 4)
	for i, v := range []float64{1, 0, 0, 1, 2, 2, 1, 1} {
		b.Data[i] = v
	}
	want := NewView(3, 4)
	blas.Dgemm(false, false, 1, a.asMatrix(), b.asMatrix(), 0, want.asMatrix())

	got := NewView(3, 4)
	NN(2, 1, a, b, 0, got)
	if d := maxAbsDiff(got, want); d > 1e-12 {
		t.Fatalf("NN diverges from Dgemm by %v", d)
	}
}

func TestAATLowerTriangleMatchesDsyrk(t *testing.T) {
	a := NewView(4, 3)
	for i := range a.Data {
		a.Data[i] = float64(i + 1)
	}
	want := NewView(4, 4)
	blas.Dsyrk(1, a.asMatrix(), 0, want.asMatrix())

	got := NewView(4, 4)
	AAT(2, 1, a, 0, got)
	for i := 0; i < 4; i++ {
		for j := 0; j <= i; j++ {
			if math.Abs(got.At(i, j)-want.At(i, j)) > 1e-12 {
				t.Fatalf("AAT[%d][%d] = %v, want %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}
