package dataset

import "fmt"

// Dataset is an immutable, once-loaded training set: N samples with labels
// in {-1, +1}, a maximum feature dimension, and two synthetic class-average
// samples appended at indexes N and N+1 (labels +1 and -1 respectively) that
// SGMA uses as deterministic initial centroids.
//
// Dataset is read-only after Build returns; callers that need mutable
// per-sample state (multipliers, residuals, partition labels) keep it
// alongside the Dataset rather than inside it.
type Dataset struct {
	samples []Sample
	labels  []float64
	dim     int
	sparse  bool

	// classAvgPos and classAvgNeg are the indexes (N and N+1) of the
	// synthetic class-average samples within samples/labels.
	classAvgPos int
	classAvgNeg int
}

// Build assembles a Dataset from samples and labels, appending the two
// synthetic class-average samples. samples and labels must have the same
// length and len(samples) >= 1 per class.
func Build(samples []Sample, labels []float64, dim int, sparse bool) (*Dataset, error) {
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("dataset: %d samples but %d labels", len(samples), len(labels))
	}
	n := len(samples)
	posSum := make(map[int]float64)
	negSum := make(map[int]float64)
	var nPos, nNeg int
	for i, y := range labels {
		target := posSum
		if y < 0 {
			target = negSum
			nNeg++
		} else {
			nPos++
		}
		s := samples[i]
		for k, idx := range s.Index {
			target[idx] += s.Value[k]
		}
	}
	if nPos == 0 || nNeg == 0 {
		return nil, fmt.Errorf("dataset: %w: need at least one sample of each class, got %d positive and %d negative", ErrProgramming, nPos, nNeg)
	}

	posAvg := averageSample(posSum, nPos)
	negAvg := averageSample(negSum, nNeg)

	all := make([]Sample, 0, n+2)
	all = append(all, samples...)
	all = append(all, posAvg, negAvg)

	allLabels := make([]float64, 0, n+2)
	allLabels = append(allLabels, labels...)
	allLabels = append(allLabels, 1, -1)

	return &Dataset{
		samples:     all,
		labels:      allLabels,
		dim:         dim,
		sparse:      sparse,
		classAvgPos: n,
		classAvgNeg: n + 1,
	}, nil
}

func averageSample(sum map[int]float64, count int) Sample {
	idx := make([]int, 0, len(sum))
	for k := range sum {
		idx = append(idx, k)
	}
	sortInts(idx)
	val := make([]float64, len(idx))
	for i, k := range idx {
		val[i] = sum[k] / float64(count)
	}
	return NewSample(idx, val)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// N returns the number of real (non-synthetic) training samples.
func (d *Dataset) N() int {
	return len(d.samples) - 2
}

// Dim returns the maximum feature dimension.
func (d *Dataset) Dim() int {
	return d.dim
}

// Sparse reports whether any sample omits any feature index.
func (d *Dataset) Sparse() bool {
	return d.sparse
}

// Sample returns the sample at index i. Indexes N and N+1 address the
// synthetic class-average samples.
func (d *Dataset) Sample(i int) Sample {
	return d.samples[i]
}

// Label returns the label of sample i.
func (d *Dataset) Label(i int) float64 {
	return d.labels[i]
}

// ClassAverageIndexes returns the indexes of the synthetic positive- and
// negative-class average samples (N and N+1).
func (d *Dataset) ClassAverageIndexes() (pos, neg int) {
	return d.classAvgPos, d.classAvgNeg
}

// ErrProgramming is returned for caller misuse that invariants forbid, e.g.
// training with no samples of one class.
var ErrProgramming = fmt.Errorf("irwls: programming error")
