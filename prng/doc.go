// Package prng provides the single deterministic random source used across
// a training run: SGMA's candidate-centroid draws and the solver's
// working-set tiebreaks. A single, seed-0 source, owned by one goroutine at
// a time, keeps a run reproducible end to end regardless of how many
// worker goroutines the linear algebra layer spins up underneath it.
package prng
