package dataset

import "sort"

// Sample is a single training or test vector stored as a sorted sequence of
// (feature index, value) pairs. Indexes absent from the sequence are zero
// (the CSV reader also keeps its zero cells explicitly), matching the
// svm_sample/index==-1 terminator convention of the original IRWLS source,
// except the Go representation uses a slice length instead of a sentinel.
//
// Indexes are 0-based internally; the LIBSVM reader/writer translates to
// and from the 1-based wire format.
type Sample struct {
	Index []int
	Value []float64

	// SqNorm is the cached squared L2 norm, ||x||^2, computed once at load
	// time so the RBF kernel never has to recompute it.
	SqNorm float64
}

// NewSample builds a Sample from already sorted, deduplicated parallel
// index/value slices and computes its cached squared norm.
func NewSample(index []int, value []float64) Sample {
	s := Sample{Index: index, Value: value}
	s.SqNorm = s.computeSqNorm()
	return s
}

func (s Sample) computeSqNorm() float64 {
	var sum float64
	for _, v := range s.Value {
		sum += v * v
	}
	return sum
}

// NNZ returns the number of stored non-zero entries.
func (s Sample) NNZ() int {
	return len(s.Index)
}

// At returns the value stored at feature index idx, or 0 if idx is absent.
func (s Sample) At(idx int) float64 {
	i := sort.SearchInts(s.Index, idx)
	if i < len(s.Index) && s.Index[i] == idx {
		return s.Value[i]
	}
	return 0
}

// Dot returns the sparse dot product of two samples via a two-pointer merge
// over the sorted index sequences, mirroring kernelFunction's linear-kernel
// branch in original_source/src/kernels.c.
func Dot(a, b Sample) float64 {
	var sum float64
	var i, j int
	for i < len(a.Index) && j < len(b.Index) {
		switch {
		case a.Index[i] == b.Index[j]:
			sum += a.Value[i] * b.Value[j]
			i++
			j++
		case a.Index[i] < b.Index[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// DotDense computes the dot product by walking both samples index-by-index
// with no merge, used when the owning Dataset has established that none of
// its samples omit any feature index (the Dataset.Sparse == false shortcut).
func DotDense(a, b Sample, dim int) float64 {
	var sum float64
	n := len(a.Value)
	if len(b.Value) < n {
		n = len(b.Value)
	}
	if dim < n {
		n = dim
	}
	for i := 0; i < n; i++ {
		sum += a.Value[i] * b.Value[i]
	}
	return sum
}

// Clone makes an independent copy of the sample, safe to mutate without
// affecting the original's backing arrays.
func (s Sample) Clone() Sample {
	idx := make([]int, len(s.Index))
	copy(idx, s.Index)
	val := make([]float64, len(s.Value))
	copy(val, s.Value)
	return Sample{Index: idx, Value: val, SqNorm: s.SqNorm}
}
