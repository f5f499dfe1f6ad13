package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/linalg"
	"github.com/RobeDM/LIBIRWLS/linalg/workpool"
	"github.com/RobeDM/LIBIRWLS/partition"
)

// elementGroup mirrors PIRWLS-train.c's elementGroup[]: 1 = unbounded
// (S1WS), 2 = excluded (its implied weight a collapsed to zero), 3 =
// bounded at +-C (S3WS). It is local to one subIRWLS call's working set.
type elementGroup int

const (
	groupS1  elementGroup = 1
	groupOut elementGroup = 2
	groupS3  elementGroup = 3
)

// subIRWLS runs the inner weighted-least-squares loop over the working set
// ws, holding every sample outside ws fixed at its current multiplier. It
// returns full N+1-length beta and residual vectors with ws's entries (and
// the bias) updated to the best-seen inner solution.
func subIRWLS(ds *dataset.Dataset, props Properties, ws partition.WorkingSet, globalBeta, globalE, y []float64) ([]float64, []float64, error) {
	n := ds.N()
	kf := props.Kernel
	wsIdx := ws.WS
	m := len(wsIdx)

	beta := make([]float64, m)
	e := make([]float64, m)
	for i, idx := range wsIdx {
		beta[i] = globalBeta[idx]
		e[i] = globalE[idx]
	}
	bias := globalBeta[n]

	// gin holds the fixed contribution of samples outside the working set
	// (ws.SIn) to each working-set row's right-hand side, and to the bias
	// row. It does not change across inner iterations: SIn multipliers are
	// frozen for the duration of this call.
	gin := make([]float64, m+1)
	for i, idx := range wsIdx {
		xi := ds.Sample(idx)
		var sum float64
		for _, j := range ws.SIn {
			sum += y[idx] * y[j] * kf.Eval(xi, ds.Sample(j)) * globalBeta[j]
		}
		gin[i] = sum
	}
	for _, j := range ws.SIn {
		gin[m] += y[j] * globalBeta[j]
	}

	a := make([]float64, m)
	group := make([]elementGroup, m)
	for i, idx := range wsIdx {
		reclassifyWeight(a, e, y, i, idx, props.C)
		if a[i] == 0 {
			group[i] = groupOut
		} else if beta[i] == y[idx]*props.C {
			group[i] = groupS3
		} else {
			group[i] = groupS1
		}
	}

	bestBeta := append([]float64(nil), beta...)
	bestBias := bias
	bestRatio := math.Inf(1)

	sinceImprovement := 0
	for iter := 0; iter < maxInnerIter; iter++ {
		var s1, s3 []int
		for i := range wsIdx {
			switch group[i] {
			case groupS1:
				s1 = append(s1, i)
			case groupS3:
				s3 = append(s3, i)
			}
		}
		n1 := len(s1)

		g13 := make([]float64, n1+1)
		if len(s3) > 0 {
			for ii, li := range s1 {
				idx := wsIdx[li]
				xi := ds.Sample(idx)
				var sum float64
				for _, lj := range s3 {
					jIdx := wsIdx[lj]
					sum += props.C * y[jIdx] * y[idx] * kf.Eval(xi, ds.Sample(jIdx))
				}
				g13[ii] = sum
			}
			for _, lj := range s3 {
				g13[n1] += props.C * y[wsIdx[lj]]
			}
		}

		h := linalg.NewView(n1+1, n1+1)
		rhs := linalg.NewView(n1+1, 2)
		for ii, li := range s1 {
			idx := wsIdx[li]
			xi := ds.Sample(idx)
			h.Set(ii, n1, y[idx])
			rhs.Set(ii, 1, y[idx])
			h.Set(n1, ii, y[idx])
			rhs.Set(ii, 0, 1-g13[ii]-gin[li])
			for jj, lj := range s1 {
				v := kf.Eval(xi, ds.Sample(wsIdx[lj])) * y[idx] * y[wsIdx[lj]]
				if ii == jj {
					v += 1 / a[li]
				}
				h.Set(ii, jj, v)
			}
		}
		h.Set(n1, n1, 0)
		rhs.Set(n1, 0, -g13[n1]-gin[m])

		workers := workpool.Threads(props.Threads, n1+1)
		// The bordered system is indefinite: solve H11*[u v] = [rhs y], then eliminate the bias row.
		if err := linalg.SPDSolve(h.Sub(0, 0, n1, n1), rhs.Sub(0, 0, n1, 2), workers); err != nil {
			return nil, nil, err
		}

		newBeta := make([]float64, m)
		newBias, yu, yv := bias, 0.0, 0.0
		for ii, li := range s1 {
			yu += y[wsIdx[li]] * rhs.At(ii, 0)
			yv += y[wsIdx[li]] * rhs.At(ii, 1)
		}
		if yv != 0 {
			newBias = (yu - rhs.At(n1, 0)) / yv
		}
		maxBeta, minBeta := 0.0, 0.0
		for ii, li := range s1 {
			v := rhs.At(ii, 0) - newBias*rhs.At(ii, 1)
			if v > maxBeta {
				maxBeta = v
			}
			if v < minBeta {
				minBeta = v
			}
			newBeta[li] = v * y[wsIdx[li]]
		}
		for _, li := range s3 {
			newBeta[li] = props.C * y[wsIdx[li]]
		}

		d := make([]float64, len(beta))
		floats.SubTo(d, newBeta, beta)
		deltaW := floats.Dot(d, d)
		normW := floats.Dot(beta, beta)
		deltaBias := newBias - bias
		deltaW += deltaBias * deltaBias
		normW += bias * bias

		for i, idxI := range wsIdx {
			xi := ds.Sample(idxI)
			var sum float64
			for j, idxJ := range wsIdx {
				if newBeta[j] != beta[j] {
					sum += kf.Eval(xi, ds.Sample(idxJ)) * (newBeta[j] - beta[j])
				}
			}
			e[i] = e[i] - sum - deltaBias
		}

		beta = newBeta
		bias = newBias

		var ratio float64
		if normW == 0 {
			ratio = math.Inf(1)
		} else {
			ratio = deltaW / normW
		}
		if ratio < bestRatio {
			bestRatio = ratio
			sinceImprovement = 0
			copy(bestBeta, beta)
			bestBias = bias
		} else {
			sinceImprovement++
		}

		for i, idx := range wsIdx {
			reclassifyWeight(a, e, y, i, idx, props.C)
			if e[i]*y[idx] < 0 && group[i] != groupOut {
				group[i] = groupOut
			}
			if group[i] == groupS1 && y[idx]*beta[i] >= 0.99*props.C && y[idx]*beta[i] <= 1.01*props.C {
				group[i] = groupS3
			}
			if a[i] == 0 && group[i] == groupS1 {
				group[i] = groupOut
			}
			if group[i] == groupOut && a[i] != 0 {
				group[i] = groupS1
			}
		}

		if iter >= 4 && minBeta >= 0 && maxBeta <= props.C && ratio < 1e-6 {
			break
		}
		if sinceImprovement >= 5 {
			break
		}
	}

	newGlobalBeta := append([]float64(nil), globalBeta...)
	newGlobalE := append([]float64(nil), globalE...)
	newGlobalBeta[n] = bestBias
	for i, idx := range wsIdx {
		newGlobalBeta[idx] = bestBeta[i]
	}
	deltaBias := bestBias - globalBeta[n]
	for i := 0; i < n; i++ {
		xi := ds.Sample(i)
		var sum float64
		for li, idx := range wsIdx {
			d := bestBeta[li] - globalBeta[idx]
			if d != 0 {
				sum += kf.Eval(xi, ds.Sample(idx)) * d
			}
		}
		newGlobalE[i] = globalE[i] - sum - deltaBias
	}

	return newGlobalBeta, newGlobalE, nil
}

// reclassifyWeight recomputes a[i], the implied IRWLS weight for
// working-set slot i (global index idx), applying the mSafeguard cap when
// the signed residual is positive but too small to divide by safely.
func reclassifyWeight(a, e, y []float64, i, idx int, c float64) {
	ey := e[i] * y[idx]
	switch {
	case ey < 0:
		a[i] = 0
	case ey < 1.0/mSafeguard:
		a[i] = c * mSafeguard
	default:
		a[i] = y[idx] * c / e[i]
	}
}
