package solver

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/partition"
	"github.com/RobeDM/LIBIRWLS/prng"
)

// Result is the outcome of a full IRWLS training run.
type Result struct {
	// Beta holds the N+1 multipliers, Beta[N] is the bias.
	Beta []float64
	// Iterations is the number of outer iterations actually run.
	Iterations int
	// Converged reports whether the outer loop stopped because the
	// convergence ratio dropped below Eta, as opposed to stalling for
	// maxOuterStall iterations.
	Converged bool
}

// Train runs the full IRWLS outer loop over ds using kf and props,
// returning the best-seen beta vector. log may be nil; when non-nil it
// receives one debug-level entry per outer iteration.
func Train(ds *dataset.Dataset, props Properties, log *logrus.Logger) (Result, error) {
	n := ds.N()
	beta := make([]float64, n+1)
	e := make([]float64, n+1)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = ds.Label(i)
		e[i] = y[i]
	}

	rng := prng.New(props.Seed)
	best := append([]float64(nil), beta...)
	bestRatio := math.Inf(1)
	sinceImprovement := 0

	outer := 0
	for ; ; outer++ {
		ws := partition.SelectWorkingSet(beta[:n], e[:n], y, props.C, props.MaxWorkingSize, rng)
		if len(ws.WS) == 0 {
			break
		}

		newBeta, newE, err := subIRWLS(ds, props, ws, beta, e, y)
		if err != nil {
			return Result{}, err
		}

		var deltaW, normW float64
		for i := 0; i <= n; i++ {
			d := newBeta[i] - beta[i]
			deltaW += d * d
			normW += beta[i] * beta[i]
		}
		beta, e = newBeta, newE

		var ratio float64
		if normW == 0 {
			ratio = math.Inf(1)
		} else {
			ratio = deltaW / normW
		}

		if ratio < bestRatio {
			bestRatio = ratio
			sinceImprovement = 0
			copy(best, beta)
		} else {
			sinceImprovement++
		}

		if log != nil {
			p := partition.Rebuild(beta[:n], e[:n], y, props.C)
			log.WithFields(logrus.Fields{
				"outer_iter": outer,
				"ws_size":    len(ws.WS),
				"s1":         len(p.S1),
				"s3":         len(p.S3),
				"ratio":      ratio,
			}).Debug("full IRWLS outer iteration")
		}

		if ratio < props.Eta {
			return Result{Beta: best, Iterations: outer + 1, Converged: true}, nil
		}
		if sinceImprovement >= maxOuterStall {
			if log != nil {
				log.WithError(ErrDivergence).Warn("outer loop stalled, returning best-seen beta")
			}
			break
		}
	}

	return Result{Beta: best, Iterations: outer + 1, Converged: false}, nil
}
