package blas

import (
	"math"
	"testing"
)

func mat(rows, cols int, data []float64) Matrix {
	return Matrix{Data: data, Stride: rows, Rows: rows, Cols: cols}
}

func TestDpotrfRoundTrip(t *testing.T) {
	// A = [[4,2],[2,3]] is SPD.
	a := mat(2, 2, []float64{4, 2, 2, 3})
	if err := Dpotrf(a); err != nil {
		t.Fatalf("Dpotrf: %v", err)
	}
	// reconstruct L*L^T and compare to A
	l00, l10, l11 := a.At(0, 0), a.At(1, 0), a.At(1, 1)
	got := [2][2]float64{
		{l00 * l00, l00 * l10},
		{l10 * l00, l10*l10 + l11*l11},
	}
	want := [2][2]float64{{4, 2}, {2, 3}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(got[i][j]-want[i][j]) > 1e-10 {
				t.Fatalf("L*L^T[%d][%d] = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestDpotrfRejectsNonPD(t *testing.T) {
	a := mat(2, 2, []float64{1, 2, 2, 1})
	if err := Dpotrf(a); err == nil {
		t.Fatal("expected a non-positive-definite error")
	}
}

func TestDtrtriRoundTrip(t *testing.T) {
	l := mat(3, 3, []float64{2, 1, 1, 0, 3, 2, 0, 0, 4})
	orig := append([]float64(nil), l.Data...)
	Dtrtri(l)

	origM := mat(3, 3, orig)
	prod := mat(3, 3, make([]float64, 9))
	Dgemm(false, false, 1, origM, l, 0, prod)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(prod.At(i, j)-want) > 1e-9 {
				t.Fatalf("L*L^-1[%d][%d] = %v, want %v", i, j, prod.At(i, j), want)
			}
		}
	}
}

func TestDpotrsSolvesSPD(t *testing.T) {
	// A = [[4,2],[2,3]], b = [1, 2] -> solve A*x = b.
	a := mat(2, 2, []float64{4, 2, 2, 3})
	b := mat(2, 1, []float64{1, 2})
	if err := Dpotrf(a); err != nil {
		t.Fatalf("Dpotrf: %v", err)
	}
	Dpotrs(a, b)

	// residual check against the original A.
	orig := mat(2, 2, []float64{4, 2, 2, 3})
	x0, x1 := b.At(0, 0), b.At(1, 0)
	r0 := orig.At(0, 0)*x0 + orig.At(0, 1)*x1 - 1
	r1 := orig.At(1, 0)*x0 + orig.At(1, 1)*x1 - 2
	if math.Abs(r0) > 1e-9 || math.Abs(r1) > 1e-9 {
		t.Fatalf("residual too large: %v %v", r0, r1)
	}
}

func TestDgemmTranspose(t *testing.T) {
	a := mat(2, 3, []float64{1, 4, 2, 5, 3, 6}) // A^T = [[1,2,3],[4,5,6]]
	b := mat(2, 2, []float64{1, 0, 0, 1})
	c := mat(3, 2, make([]float64, 6))
	Dgemm(true, false, 1, a, b, 0, c)
	want := [][2]float64{{1, 4}, {2, 5}, {3, 6}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(c.At(i, j)-want[i][j]) > 1e-12 {
				t.Fatalf("c[%d][%d] = %v, want %v", i, j, c.At(i, j), want[i][j])
			}
		}
	}
}

func TestDsyrkLowerTriangleOnly(t *testing.T) {
	a := mat(2, 2, []float64{1, 2, 3, 4}) // columns: [1,2],[3,4]
	c := mat(2, 2, make([]float64, 4))
	Dsyrk(1, a, 0, c)
	if math.Abs(c.At(0, 0)-10) > 1e-12 { // 1*1+3*3=10
		t.Fatalf("c[0][0] = %v, want 10", c.At(0, 0))
	}
	if math.Abs(c.At(1, 0)-14) > 1e-12 { // 2*1+4*3=14
		t.Fatalf("c[1][0] = %v, want 14", c.At(1, 0))
	}
}
