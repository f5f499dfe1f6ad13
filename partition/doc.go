// Package partition classifies training samples into the three groups the
// full IRWLS engine (solver) tracks across outer iterations: S1 (unbounded
// support vectors), S2 (inactive) and S3 (bounded support vectors). A
// sample's group is a pure function of its current multiplier, residual
// and label; this package only derives group membership, it owns neither
// the multiplier nor the residual vectors themselves.
package partition
