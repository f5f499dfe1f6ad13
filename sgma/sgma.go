package sgma

import (
	"errors"
	"math"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
	"github.com/RobeDM/LIBIRWLS/prng"
)

// Method selects how the semiparametric model's basis centroids are
// chosen.
type Method int

const (
	// Random draws size distinct sample indexes uniformly at random.
	Random Method = iota
	// Greedy runs the SGMA algorithm.
	Greedy
)

// candidatePoolSize is the number of candidates SGMA scores per round
// before picking the one with the largest error descent.
const candidatePoolSize = 64

// ridgeJitter is the small diagonal addition (1e-5 in the reference) that
// keeps the running Cholesky factor well conditioned as centroids are
// added.
const ridgeJitter = 1e-5

// ErrLinearKernelUnsupported is returned when Greedy selection is asked to
// run over a linear kernel. SGMA's error-descent score assumes the
// kernel's self-value is the constant 1 (see kernel.Func.Self for RBF);
// under a linear kernel that value varies per sample, and the reference
// algorithm was never exercised against that case. Random selection works
// with either kernel.
var ErrLinearKernelUnsupported = errors.New("sgma: greedy selection requires the RBF kernel")

// Select returns size sample indexes to use as the semiparametric model's
// basis. Random returns distinct indexes in [0, ds.N()). Greedy returns the
// class-average indexes ds.N() and ds.N()+1 first, then indexes in
// [0, ds.N()); its candidate draw does not exclude already-selected indexes.
func Select(ds *dataset.Dataset, kf kernel.Func, method Method, size int, workers int, rng *prng.Source) ([]int, error) {
	if method == Random {
		return selectRandom(ds, size, rng), nil
	}
	if kf.Type == kernel.Linear {
		return nil, ErrLinearKernelUnsupported
	}
	return selectGreedy(ds, kf, size, workers, rng)
}

func selectRandom(ds *dataset.Dataset, size int, rng *prng.Source) []int {
	return rng.SampleWithoutReplacement(ds.N(), size)
}

// runningCholesky is the growing lower-triangular Cholesky factor (and its
// explicit inverse) of the kernel Gram matrix over the centroids selected
// so far. Both are extended by one row/column per round via the
// bordering update, rather than refactorized from scratch.
type runningCholesky struct {
	l    [][]float64
	linv [][]float64
}

func (r *runningCholesky) size() int { return len(r.l) }

// extend adds one more centroid to the factorization given kNC, the
// kernel values between the new centroid and every already-selected one,
// and selfK, the new centroid's own kernel self-value.
func (r *runningCholesky) extend(kNC []float64, selfK float64) {
	n := r.size()
	l2 := r.solveLower(kNC)
	var ssq float64
	for _, v := range l2 {
		ssq += v * v
	}
	l3sq := selfK + ridgeJitter - ssq
	if l3sq < ridgeJitter {
		l3sq = ridgeJitter
	}
	l3 := math.Sqrt(l3sq)
	il3 := 1 / l3
	// The new inverse row is -il3 * l2^T * Linv.
	ilv := make([]float64, n)
	for i := 0; i < n; i++ {
		for p := 0; p <= i; p++ {
			ilv[p] += l2[i] * r.linv[i][p]
		}
	}

	for i := 0; i < n; i++ {
		r.l[i] = append(r.l[i], l2[i])
		r.linv[i] = append(r.linv[i], 0)
	}
	newRow := append(append([]float64(nil), l2...), l3)
	r.l = append(r.l, newRow)
	invRow := make([]float64, n+1)
	for p := 0; p < n; p++ {
		invRow[p] = -il3 * ilv[p]
	}
	invRow[n] = il3
	r.linv = append(r.linv, invRow)
}

// solveLower computes L^-1 * b via forward substitution.
func (r *runningCholesky) solveLower(b []float64) []float64 {
	n := len(b)
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for p := 0; p < i; p++ {
			sum -= r.l[i][p] * x[p]
		}
		x[i] = sum / r.l[i][i]
	}
	return x
}

// multiplyLower computes Linv * b.
func (r *runningCholesky) multiplyLower(b []float64) []float64 {
	n := len(b)
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for p := 0; p <= i; p++ {
			sum += r.linv[i][p] * b[p]
		}
		x[i] = sum
	}
	return x
}

// solve computes K^-1 * b, where K = l*l^T, via forward and backward
// substitution through the Cholesky factor.
func (r *runningCholesky) solve(b []float64) []float64 {
	n := len(b)
	y := r.solveLower(b)
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for p := i + 1; p < n; p++ {
			sum -= r.l[p][i] * x[p]
		}
		x[i] = sum / r.l[i][i]
	}
	return x
}

// selectGreedy runs SGMA. The first two centroids are always the
// synthetic positive- and negative-class average samples, matching the
// reference's size==0/size==1 special cases; every subsequent centroid is
// chosen by scoring candidatePoolSize random candidates, alternating the
// label they are required to carry by candidate slot parity, and keeping
// the largest error descent.
func selectGreedy(ds *dataset.Dataset, kf kernel.Func, size int, workers int, rng *prng.Source) ([]int, error) {
	n := ds.N()
	posAvg, negAvg := ds.ClassAverageIndexes()

	centroids := make([]int, 0, size)
	chol := &runningCholesky{}
	// ksc[j] holds K(sample_j, centroid_r) for every selected centroid r,
	// one column appended per round, mirroring the reference's KSC.
	ksc := make([][]float64, n)
	for i := range ksc {
		ksc[i] = make([]float64, 0, size)
	}

	for len(centroids) < size {
		round := len(centroids)
		var chosen int
		switch round {
		case 0:
			chosen = posAvg
		case 1:
			chosen = negAvg
		default:
			best, err := bestCandidate(ds, kf, workers, rng, centroids, chol, ksc)
			if err != nil {
				return nil, err
			}
			chosen = best
		}

		kNC := make([]float64, round)
		for e, c := range centroids {
			kNC[e] = kf.Eval(ds.Sample(chosen), ds.Sample(c))
		}
		chol.extend(kNC, kf.Self(ds.Sample(chosen)))

		for j := 0; j < n; j++ {
			ksc[j] = append(ksc[j], kf.Eval(ds.Sample(j), ds.Sample(chosen)))
		}
		centroids = append(centroids, chosen)
	}

	return centroids, nil
}

type candidateScore struct {
	index int
	score float64
}

// bestCandidate draws candidatePoolSize random samples, alternating the
// label required by candidate slot parity (even slots want y=-1, odd slots want
// y=+1, matching the reference's (i%2)*2-1 rule), scores each against the
// current Nystrom residual, and returns the index with the largest score.
// Candidates are scored concurrently across workers, mirroring the
// reference's openmp-for over the fixed 64-candidate pool.
func bestCandidate(ds *dataset.Dataset, kf kernel.Func, workers int, rng *prng.Source, centroids []int, chol *runningCholesky, ksc [][]float64) (int, error) {
	n := ds.N()
	candidates := make([]int, candidatePoolSize)
	for i := range candidates {
		wantNeg := i%2 == 0
		for {
			idx := rng.Intn(n)
			y := ds.Label(idx)
			if (wantNeg && y < 0) || (!wantNeg && y > 0) {
				candidates[i] = idx
				break
			}
		}
	}

	scores := make([]candidateScore, candidatePoolSize)
	err := workpool.Do(workpool.Threads(workers, candidatePoolSize), candidatePoolSize, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			scores[i] = candidateScore{
				index: candidates[i],
				score: scoreCandidate(ds, kf, candidates[i], centroids, chol, ksc),
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.score > best.score {
			best = s
		}
	}
	return best.index, nil
}

// scoreCandidate computes the SGMA error-descent score for one candidate:
// the squared norm of its kernel row against every training sample, after
// projecting out the part already explained by the selected centroids,
// divided by the Schur complement diagonal eta.
func scoreCandidate(ds *dataset.Dataset, kf kernel.Func, candidate int, centroids []int, chol *runningCholesky, ksc [][]float64) float64 {
	n := ds.N()
	round := len(centroids)
	if round == 0 {
		return 1
	}

	xc := ds.Sample(candidate)
	kNC := make([]float64, round)
	for e, c := range centroids {
		kNC[e] = kf.Eval(xc, ds.Sample(c))
	}

	z := chol.solve(kNC)
	eta := kf.Self(xc)
	for e := 0; e < round; e++ {
		eta -= kNC[e] * z[e]
	}
	if eta <= 0 {
		return 0
	}

	var residualSq float64
	for j := 0; j < n; j++ {
		kjm := kf.Eval(xc, ds.Sample(j))
		for e := 0; e < round; e++ {
			kjm -= ksc[j][e] * z[e]
		}
		residualSq += kjm * kjm
	}
	return residualSq / eta
}
