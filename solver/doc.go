// Package solver implements the full IRWLS engine: the outer working-set
// loop and the inner sub-solver it repeatedly invokes.
package solver
