package partition

// Group is one of the three sample states an IRWLS outer iteration tracks.
type Group int

const (
	// S1 samples have an unbounded multiplier: |beta| is below C and the
	// sample is not inactive (beta may still be 0 when e*y >= 0), to be
	// determined by the next linear solve.
	S1 Group = iota
	// S2 samples are inactive: beta is 0 and the signed residual is
	// negative, so the sample does not enter the linear system.
	S2
	// S3 samples are bounded support vectors: the multiplier has
	// saturated at +-C.
	S3
)

func (g Group) String() string {
	switch g {
	case S1:
		return "S1"
	case S2:
		return "S2"
	case S3:
		return "S3"
	default:
		return "?"
	}
}

// Classify derives a sample's group from its multiplier beta, residual e,
// label y and penalty C, following spec invariant 2: group is S3 iff
// |beta| == C, S2 iff beta == 0 and e*y < 0, S1 otherwise.
func Classify(beta, e, y, c float64) Group {
	if abs(beta) >= c {
		return S3
	}
	if beta == 0 && e*y < 0 {
		return S2
	}
	return S1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Partition holds, for one rebuild, the index lists of every sample in
// each group. Counts always sum to N (spec invariant 4).
type Partition struct {
	S1 []int
	S2 []int
	S3 []int
}

// Rebuild classifies every sample in [0, n) from the current beta/e/y
// vectors and returns a freshly built Partition. Rebuild is called once
// per outer iteration; it never mutates beta, e or y.
func Rebuild(beta, e, y []float64, c float64) Partition {
	n := len(beta)
	p := Partition{
		S1: make([]int, 0, n),
		S2: make([]int, 0, n),
		S3: make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		switch Classify(beta[i], e[i], y[i], c) {
		case S1:
			p.S1 = append(p.S1, i)
		case S2:
			p.S2 = append(p.S2, i)
		case S3:
			p.S3 = append(p.S3, i)
		}
	}
	return p
}

// Len returns the total number of classified samples, which must equal N.
func (p Partition) Len() int {
	return len(p.S1) + len(p.S2) + len(p.S3)
}
