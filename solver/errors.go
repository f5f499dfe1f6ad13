package solver

import "errors"

// ErrDivergence marks an outer loop that failed to make progress, where the
// best-seen beta is being returned instead of a converged one. Train itself
// never returns this error (divergence is recovered locally); it is
// exposed so callers that want to distinguish a clean convergence from a
// recovered one can inspect Result.Converged instead of relying on a
// sentinel error.
var ErrDivergence = errors.New("solver: outer iteration failed to converge, returning best-seen beta")
