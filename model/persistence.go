package model

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/kernel"
)

// Save writes m to w in a fixed little-endian layout: gamma, bias, dim,
// kernelType, sparse, S, nElem, weights[S], sqnorms[S], then every vector's
// (index, value) pairs terminated by a {-1, 0} sentinel.
func Save(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	sparse := int32(0)
	if m.Sparse {
		sparse = 1
	}
	nElem := int32(0)
	for _, v := range m.Vectors {
		nElem += int32(v.NNZ() + 1)
	}

	fields := []interface{}{
		m.Gamma,
		m.Bias,
		int32(m.Dim),
		int32(m.KernelType),
		sparse,
		int32(len(m.Vectors)),
		nElem,
		m.Weights,
		m.SqNorms,
	}
	for _, f := range fields {
		if err := binary.Write(bw, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("model: %w: %v", ErrIO, err)
		}
	}

	for _, v := range m.Vectors {
		for k, idx := range v.Index {
			if err := binary.Write(bw, binary.LittleEndian, int32(idx)); err != nil {
				return fmt.Errorf("model: %w: %v", ErrIO, err)
			}
			if err := binary.Write(bw, binary.LittleEndian, v.Value[k]); err != nil {
				return fmt.Errorf("model: %w: %v", ErrIO, err)
			}
		}
		if err := binary.Write(bw, binary.LittleEndian, int32(-1)); err != nil {
			return fmt.Errorf("model: %w: %v", ErrIO, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, float64(0)); err != nil {
			return fmt.Errorf("model: %w: %v", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("model: %w: %v", ErrIO, err)
	}
	return nil
}

// Load reads a Model previously written by Save, reconstructing each
// vector's feature sequence by scanning the flat features arena for {-1}
// sentinels.
func Load(r io.Reader) (*Model, error) {
	var gamma, bias float64
	var dim, kernelTypeRaw, sparseRaw, s, nElem int32

	for _, dst := range []interface{}{&gamma, &bias, &dim, &kernelTypeRaw, &sparseRaw, &s, &nElem} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, fmt.Errorf("model: %w: %v", ErrIO, err)
		}
	}

	weights := make([]float64, s)
	if err := binary.Read(r, binary.LittleEndian, weights); err != nil {
		return nil, fmt.Errorf("model: %w: %v", ErrIO, err)
	}
	sqnorms := make([]float64, s)
	if err := binary.Read(r, binary.LittleEndian, sqnorms); err != nil {
		return nil, fmt.Errorf("model: %w: %v", ErrIO, err)
	}

	vectors := make([]dataset.Sample, 0, s)
	var idx []int
	var val []float64
	for i := int32(0); i < nElem; i++ {
		var fi int32
		var fv float64
		if err := binary.Read(r, binary.LittleEndian, &fi); err != nil {
			return nil, fmt.Errorf("model: %w: %v", ErrIO, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &fv); err != nil {
			return nil, fmt.Errorf("model: %w: %v", ErrIO, err)
		}
		if fi == -1 {
			vectors = append(vectors, dataset.NewSample(idx, val))
			idx, val = nil, nil
			continue
		}
		idx = append(idx, int(fi))
		val = append(val, fv)
	}
	if len(vectors) != int(s) {
		return nil, fmt.Errorf("model: %w: expected %d vectors, found %d sentinels", ErrIO, s, len(vectors))
	}

	return &Model{
		Gamma:      gamma,
		Bias:       bias,
		Dim:        int(dim),
		KernelType: kernel.Type(kernelTypeRaw),
		Sparse:     sparseRaw != 0,
		Weights:    weights,
		SqNorms:    sqnorms,
		Vectors:    vectors,
	}, nil
}
