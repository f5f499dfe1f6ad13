package semiparam

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/linalg"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
)

// Result is the outcome of a semiparametric training run.
type Result struct {
	// Beta holds one weight per centroid, in the same order as the
	// centroids slice passed to Train. The semiparametric model carries
	// no separate bias term: calculatePSIRWLSModel always emits bias=0,
	// the class-average centroids absorb the offset instead.
	Beta       []float64
	Iterations int
	Converged  bool
}

// Train solves the reduced normal equations over the fixed centroid
// basis, iterating until the convergence ratio drops below
// 1e-6 for maxStall consecutive iterations, the loop stalls, or maxIter is
// reached. log may be nil.
func Train(ds *dataset.Dataset, centroids []int, props Properties, log *logrus.Logger) (Result, error) {
	size := len(centroids)
	n := ds.N()
	kf := props.Kernel

	kc := make([][]float64, size)
	for i := range kc {
		kc[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			v := kf.Eval(ds.Sample(centroids[i]), ds.Sample(centroids[j]))
			if i == j {
				v += ridgeJitter
			}
			kc[i][j] = v
		}
	}

	ksc := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = ds.Label(i)
		ksc[i] = make([]float64, size)
		xi := ds.Sample(i)
		for c := 0; c < size; c++ {
			ksc[i][c] = kf.Eval(xi, ds.Sample(centroids[c]))
		}
	}

	m := mSafeguard
	d := make([]float64, n)
	for i := range d {
		d[i] = m
	}

	beta := make([]float64, size)
	bestBeta := make([]float64, size)
	bestRatio := math.Inf(1)
	oldRatio := 0.0
	sinceImprovement := 0
	belowEta := 0

	iter := 0
	for ; iter < maxIter; iter++ {
		k1, k2, err := normalEquations(kc, ksc, d, y, size, props.Threads)
		if err != nil {
			return Result{}, err
		}

		h := linalg.NewView(size, size)
		rhs := linalg.NewView(size, 1)
		for i := 0; i < size; i++ {
			rhs.Set(i, 0, k2[i])
			for j := 0; j < size; j++ {
				h.Set(i, j, k1[i*size+j])
			}
		}

		workers := workpool.Threads(props.Threads, size)
		if err := linalg.SPDSolve(h, rhs, workers); err != nil {
			return Result{}, err
		}

		newBeta := make([]float64, size)
		for i := 0; i < size; i++ {
			newBeta[i] = rhs.At(i, 0)
		}
		delta := make([]float64, size)
		floats.SubTo(delta, newBeta, beta)
		deltaW := floats.Dot(delta, delta)
		normW := floats.Dot(newBeta, newBeta)
		beta = newBeta

		e := make([]float64, n)
		copy(e, y)
		for i := 0; i < n; i++ {
			var sum float64
			for c := 0; c < size; c++ {
				sum += beta[c] * ksc[i][c]
			}
			e[i] -= sum
		}
		for i := 0; i < n; i++ {
			d[i] = reclassifyWeight(e[i], y[i], props.C, m)
		}

		var ratio float64
		if normW == 0 {
			ratio = math.Inf(1)
		} else {
			ratio = deltaW / normW
		}

		if log != nil {
			log.WithFields(logrus.Fields{
				"iter":  iter,
				"ratio": ratio,
				"m":     m,
			}).Debug("semiparametric IRWLS iteration")
		}

		if iter > 10 && ratio > 100*oldRatio {
			m /= 2
		}
		oldRatio = ratio

		if ratio < bestRatio {
			bestRatio = ratio
			sinceImprovement = 0
			copy(bestBeta, beta)
		} else {
			sinceImprovement++
		}

		if ratio < eta {
			belowEta++
			if belowEta >= maxStall {
				return Result{Beta: bestBeta, Iterations: iter + 1, Converged: true}, nil
			}
		} else {
			belowEta = 0
		}
		if sinceImprovement >= maxStall {
			break
		}
	}

	return Result{Beta: bestBeta, Iterations: iter + 1, Converged: false}, nil
}

// reclassifyWeight recomputes the per-sample weight d_i = c/(y_i*e_i),
// capping it at m (solver.reclassifyWeight caps a_i at c*mSafeguard
// instead).
func reclassifyWeight(ei, yi, c, m float64) float64 {
	if ei*yi < 0 {
		return 0
	}
	d := c / (yi * ei)
	if d > m {
		return m
	}
	return d
}

// normalEquations accumulates K_{C,C} + K_{A,C}^T*D_A*K_{A,C} and
// K_{A,C}^T*D_A*y_A over the active samples (d_i != 0), splitting the
// reduction across workers and merging their partial sums under a mutex.
func normalEquations(kc, ksc [][]float64, d, y []float64, size, workers int) (k1, k2 []float64, err error) {
	n := len(ksc)
	k1 = make([]float64, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			k1[i*size+j] = kc[i][j]
		}
	}
	k2 = make([]float64, size)

	var mu sync.Mutex
	err = workpool.Do(workpool.Threads(workers, n), n, func(lo, hi int) error {
		local1 := make([]float64, size*size)
		local2 := make([]float64, size)
		for i := lo; i < hi; i++ {
			if d[i] == 0 {
				continue
			}
			row := ksc[i]
			for a := 0; a < size; a++ {
				local2[a] += d[i] * y[i] * row[a]
				for b := 0; b < size; b++ {
					local1[a*size+b] += d[i] * row[a] * row[b]
				}
			}
		}
		mu.Lock()
		for idx := range local1 {
			k1[idx] += local1[idx]
		}
		for idx := range local2 {
			k2[idx] += local2[idx]
		}
		mu.Unlock()
		return nil
	})
	return k1, k2, err
}
