package solver

import "github.com/RobeDM/LIBIRWLS/kernel"

// mSafeguard is the numeric safeguard: when a sample's signed residual is
// positive but smaller than 1/M, its implied IRWLS weight a_i is capped at
// C*M instead of being allowed to blow up.
const mSafeguard = 1e4

// maxOuterStall is the number of consecutive outer iterations without an
// improved convergence ratio before the outer loop gives up and returns
// the best beta seen so far.
const maxOuterStall = 300

// maxInnerIter bounds the inner IRWLS sub-solver's iteration count.
const maxInnerIter = 1000

// Properties bundles every full-mode IRWLS training hyperparameter.
type Properties struct {
	C              float64
	Eta            float64
	Threads        int
	MaxWorkingSize int
	Kernel         kernel.Func
	Seed           uint64
}
