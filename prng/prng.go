package prng

import "golang.org/x/exp/rand"

// Source is a single-owner deterministic random source. It is not safe for
// concurrent use: every call site that needs randomness (SGMA's candidate
// draws, the solver's working-set tiebreaks) runs on the same goroutine
// that owns the training run's outer loop.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically. Two Sources built with the
// same seed produce the same sequence of draws, which is what makes a
// training run with a fixed seed reproducible regardless of worker count.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.r.Perm(n)
}

// SampleWithoutReplacement draws k distinct indices from [0, n) uniformly
// at random, the draw sgma's Random centroid selection uses. It panics if
// k > n.
func (s *Source) SampleWithoutReplacement(n, k int) []int {
	if k > n {
		panic("prng: cannot sample more elements than the population")
	}
	perm := s.r.Perm(n)
	return perm[:k]
}
