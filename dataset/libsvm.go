package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadLIBSVM parses a whitespace-separated LIBSVM-format file. Each line is
// "label idx1:val1 idx2:val2 ..." with label in {-1, +1} and strictly
// increasing 1-based idx. When labeled is false the first field is not a
// label and every sample is assigned label 0 (used by the predict path for
// unlabeled input). It mirrors original_source/src/IOStructures.c's
// readTrainFile/readUnlabeledFile.
func ReadLIBSVM(r io.Reader, labeled bool) ([]Sample, []float64, int, bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var samples []Sample
	var labels []float64
	maxdim := 0
	sparse := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		start := 0
		label := 0.0
		if labeled {
			if len(fields) == 0 {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: missing label", lineNo, ErrInput)
			}
			var err error
			label, err = strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: bad label %q", lineNo, ErrInput, fields[0])
			}
			start = 1
		}

		idx := make([]int, 0, len(fields)-start)
		val := make([]float64, 0, len(fields)-start)
		prev := 0
		for _, f := range fields[start:] {
			parts := strings.SplitN(f, ":", 2)
			if len(parts) != 2 {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: malformed feature %q", lineNo, ErrInput, f)
			}
			fi, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: bad feature index %q", lineNo, ErrInput, parts[0])
			}
			if fi < 1 {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: feature index %d must be >= 1", lineNo, ErrInput, fi)
			}
			if fi <= prev {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: feature indexes must be strictly increasing", lineNo, ErrInput)
			}
			fv, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, nil, 0, false, fmt.Errorf("dataset: line %d: %w: bad feature value %q", lineNo, ErrInput, parts[1])
			}
			prev = fi
			zi := fi - 1
			idx = append(idx, zi)
			val = append(val, fv)
			if fi > maxdim {
				maxdim = fi
			}
		}
		if len(idx) > 0 && idx[len(idx)-1] != maxdim-1 {
			sparse = true
		}

		samples = append(samples, NewSample(idx, val))
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, false, fmt.Errorf("dataset: %w: %v", ErrInput, err)
	}

	for _, s := range samples {
		if s.NNZ() < maxdim {
			sparse = true
			break
		}
	}

	return samples, labels, maxdim, sparse, nil
}

// WriteLIBSVM writes samples and labels in LIBSVM format, 1-based indexes.
func WriteLIBSVM(w io.Writer, samples []Sample, labels []float64) error {
	bw := bufio.NewWriter(w)
	for i, s := range samples {
		if labels != nil {
			if _, err := fmt.Fprintf(bw, "%g", labels[i]); err != nil {
				return err
			}
		}
		for k, idx := range s.Index {
			if labels != nil || k > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d:%g", idx+1, s.Value[k]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ErrInput marks malformed training or prediction input.
var ErrInput = fmt.Errorf("irwls: input error")
