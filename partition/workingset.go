package partition

import "github.com/RobeDM/LIBIRWLS/prng"

// epsilonThreshold is the KKT violation tolerance below which a sample is
// considered satisfied and left out of the working set.
const epsilonThreshold = 0.001

// WorkingSet is the result of one working-set rebuild: WS holds the
// indices entering the next inner IRWLS solve, SIn holds every other
// sample: bounded or zero-multiplier samples satisfying their KKT
// condition, plus any candidates left over when the pool overflows (they
// stay out of the linear system, but their influence still folds into the
// right-hand side via the solver's SIn contribution term).
type WorkingSet struct {
	WS  []int
	SIn []int
}

// SelectWorkingSet builds the next working set from the current multiplier
// beta, residual e and label y vectors, following the six-slot
// composition rule: every sample falls into one of three saturation
// buckets (bounded at +-C, zero, or strictly between), and within each
// bucket a privileged slot is reserved for the first KKT violator found
// with y=-1 and the first with y=+1. Violators that find their slot taken,
// and every strictly-between sample whether it violates or not, go to a
// candidate pool that fills out the rest of maxSize; if the pool is larger than the remaining
// room, rng draws a uniform random subset, matching the reference
// implementation's permutation-based tie-break.
func SelectWorkingSet(beta, e, y []float64, c float64, maxSize int, rng *prng.Source) WorkingSet {
	n := len(beta)
	ws := make([]int, 0, maxSize)
	sin := make([]int, 0, n)
	sc := make([]int, 0, n)

	var found00, found01, found02, found10, found11, found12 bool

	reserve := func(i int, negSlot, posSlot *bool) bool {
		if y[i] < 0 {
			if !*negSlot {
				*negSlot = true
				ws = append(ws, i)
				return true
			}
			return false
		}
		if !*posSlot {
			*posSlot = true
			ws = append(ws, i)
			return true
		}
		return false
	}

	for i := 0; i < n; i++ {
		switch {
		case beta[i]*y[i] == c:
			eps := e[i] * y[i]
			if eps < -epsilonThreshold {
				if !reserve(i, &found02, &found12) {
					sc = append(sc, i)
				}
			} else {
				sin = append(sin, i)
			}
		case beta[i] == 0:
			eps := e[i] * y[i]
			if eps > epsilonThreshold {
				if !reserve(i, &found00, &found10) {
					sc = append(sc, i)
				}
			} else {
				sin = append(sin, i)
			}
		default:
			eps := abs(e[i] * y[i])
			if eps > epsilonThreshold {
				if !reserve(i, &found01, &found11) {
					sc = append(sc, i)
				}
			} else {
				sc = append(sc, i)
			}
		}
	}

	space := maxSize - len(ws)
	if len(sc) <= space {
		ws = append(ws, sc...)
	} else {
		perm := rng.Perm(len(sc))
		for idx, p := range perm {
			if idx < space {
				ws = append(ws, sc[p])
			} else {
				sin = append(sin, sc[p])
			}
		}
	}

	return WorkingSet{WS: ws, SIn: sin}
}
