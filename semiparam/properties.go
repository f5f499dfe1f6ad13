package semiparam

import "github.com/RobeDM/LIBIRWLS/kernel"

// mSafeguard is the initial numeric cap on the per-sample weight d_i
// (solver caps its a_i at C times its own mSafeguard).
const mSafeguard = 1e4

// ridgeJitter is added to K_{C,C}'s diagonal so the reduced normal
// equations stay strictly SPD even when two centroids are nearly
// identical.
const ridgeJitter = 1e-5

// maxIter bounds the outer iteration count.
const maxIter = 500

// eta is the fixed convergence ratio threshold; this is not exposed as a
// user-tunable hyperparameter the way solver.Eta is.
const eta = 1e-6

// maxStall is the number of consecutive iterations without an improved
// ratio before the loop gives up.
const maxStall = 5

// Properties bundles every semiparametric training hyperparameter.
type Properties struct {
	C       float64
	Threads int
	Kernel  kernel.Func
}
