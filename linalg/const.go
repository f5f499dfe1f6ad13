package linalg

// blockThreshold is the submatrix size below which a block-recursive
// operation stops recursing and calls into the single-threaded linalg/blas
// leaf directly.
const blockThreshold = 64
