// Package blas provides the single-threaded, BLAS-like dense primitives
// that the block-recursive algorithms in linalg delegate to once a
// sub-problem falls below the parallelization threshold: general matrix
// products (gemm), symmetric rank-k updates (syrk), triangular solves
// (trsm/potrs), triangular inversion (trtri) and Cholesky factorization
// (potrf). Every routine here must run single-threaded; linalg supplies
// all of the system's parallelism through recursion.
package blas
