// Package dataset provides the sparse sample and training-set types shared
// by every IRWLS component, plus LIBSVM and CSV readers/writers.
//
// A Sample is an ordered sequence of (feature index, value) pairs sorted by
// strictly increasing index, with a cached squared L2 norm so kernel
// evaluation never has to recompute it.
package dataset
