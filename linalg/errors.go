package linalg

import "errors"

// ErrNotPositiveDefinite marks a Cholesky factorization that hit a
// non-positive diagonal block.
var ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

// ErrResource marks a failed allocation of the per-worker scratch arena.
var ErrResource = errors.New("linalg: failed to allocate scratch arena")
