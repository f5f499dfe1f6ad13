package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a dense CSV-format dataset with a configurable field
// separator. When labeled is true the first column of every row is the
// label and the remaining columns are feature values in index order
// (1..ncols-1); otherwise every column is a feature value. Zero-valued
// cells are still stored explicitly here (the caller's Dataset.Sparse
// flag reflects whether that matters); CSV input is always treated as a
// dense-format shortcut.
func ReadCSV(r io.Reader, sep rune, labeled bool) ([]Sample, []float64, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var samples []Sample
	var labels []float64
	maxdim := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, string(sep))

		start := 0
		label := 0.0
		if labeled {
			var err error
			label, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("dataset: line %d: %w: bad label %q", lineNo, ErrInput, fields[0])
			}
			start = 1
		}

		ncols := len(fields) - start
		idx := make([]int, 0, ncols)
		val := make([]float64, 0, ncols)
		for i, f := range fields[start:] {
			fv, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("dataset: line %d: %w: bad value %q", lineNo, ErrInput, f)
			}
			idx = append(idx, i)
			val = append(val, fv)
		}
		if ncols > maxdim {
			maxdim = ncols
		}

		samples = append(samples, NewSample(idx, val))
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("dataset: %w: %v", ErrInput, err)
	}

	return samples, labels, maxdim, nil
}
