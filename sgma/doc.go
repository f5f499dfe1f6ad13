// Package sgma selects the basis centroids of the semiparametric model:
// either a uniform random subset, or a greedy Sparse Greedy Matrix
// Approximation (SGMA) selection that scores candidates per round against
// the current Nystrom residual and keeps the one with the largest error
// descent.
package sgma
