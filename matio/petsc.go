// SPDX-License-Identifier: MIT
// Package matio - PETSc binary matrix codec.
//
// Layout (all big-endian):
//
//	int32   classid (1211216)
//	int32   rows, cols, nnz
//	int32   row lengths [rows]
//	int32   column indices [nnz], ascending within each row
//	float64 values [nnz]
//
// Arrays are streamed in bounded chunks, so a lying header fails on the first
// missing byte instead of provoking a huge allocation.
package matio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/ghep/matrix"
)

// chunk is the number of array elements read per binary.Read call.
const chunk = 4096

func writePETSc(w io.Writer, m *matrix.Sparse) error {
	rows, cols := m.Dims()
	nnz := m.NNZ()
	if rows > math.MaxInt32 || cols > math.MaxInt32 || nnz > math.MaxInt32 {
		return fmt.Errorf("writePETSc(%dx%d, nnz=%d): %w", rows, cols, nnz, ErrTooLarge)
	}

	rowLen := make([]int32, rows)
	colIdx := make([]int32, 0, nnz)
	vals := make([]float64, 0, nnz)
	m.DoNonZero(func(i, j int, v float64) {
		rowLen[i]++
		colIdx = append(colIdx, int32(j))
		vals = append(vals, v)
	})

	bw := bufio.NewWriter(w)
	header := [4]int32{petscMatClassID, int32(rows), int32(cols), int32(nnz)}
	for _, part := range []interface{}{header, rowLen, colIdx, vals} {
		if err := binary.Write(bw, binary.BigEndian, part); err != nil {
			return fmt.Errorf("writePETSc: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writePETSc: %w", err)
	}

	return nil
}

func readPETSc(r io.Reader, opts ...matrix.Option) (*matrix.Sparse, error) {
	var header [4]int32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("readPETSc: header: %w", truncated(err))
	}
	classID, rows, cols, nnz := header[0], header[1], header[2], header[3]
	if classID != petscMatClassID {
		return nil, fmt.Errorf("readPETSc: classid %d: %w", classID, ErrBadHeader)
	}
	if rows <= 0 || cols <= 0 || nnz < 0 || int64(nnz) > int64(rows)*int64(cols) {
		return nil, fmt.Errorf("readPETSc: rows=%d cols=%d nnz=%d: %w", rows, cols, nnz, ErrBadHeader)
	}

	rowLen, err := readInt32s(r, int(rows))
	if err != nil {
		return nil, fmt.Errorf("readPETSc: row lengths: %w", err)
	}
	var sum int64
	for i, l := range rowLen {
		if l < 0 || l > cols {
			return nil, fmt.Errorf("readPETSc: row %d length %d: %w", i, l, ErrCorrupt)
		}
		sum += int64(l)
	}
	if sum != int64(nnz) {
		return nil, fmt.Errorf("readPETSc: row lengths sum to %d, header nnz %d: %w", sum, nnz, ErrCorrupt)
	}

	colIdx, err := readInt32s(r, int(nnz))
	if err != nil {
		return nil, fmt.Errorf("readPETSc: column indices: %w", err)
	}
	vals, err := readFloat64s(r, int(nnz))
	if err != nil {
		return nil, fmt.Errorf("readPETSc: values: %w", err)
	}

	m, err := matrix.NewSparse(int(rows), int(cols), opts...)
	if err != nil {
		return nil, fmt.Errorf("readPETSc: %w", err)
	}
	k := 0
	for i, l := range rowLen {
		for end := k + int(l); k < end; k++ {
			j := colIdx[k]
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("readPETSc: row %d column %d: %w", i, j, ErrCorrupt)
			}
			if err = m.SetValue(i, int(j), vals[k]); err != nil {
				return nil, fmt.Errorf("readPETSc: %w", err)
			}
		}
	}
	if err = m.Assemble(); err != nil {
		return nil, fmt.Errorf("readPETSc: %w", err)
	}

	return m, nil
}

func readInt32s(r io.Reader, n int) ([]int32, error) {
	out := make([]int32, 0, min(n, chunk))
	buf := make([]int32, min(n, chunk))
	for len(out) < n {
		b := buf[:min(n-len(out), chunk)]
		if err := binary.Read(r, binary.BigEndian, b); err != nil {
			return nil, truncated(err)
		}
		out = append(out, b...)
	}

	return out, nil
}

func readFloat64s(r io.Reader, n int) ([]float64, error) {
	out := make([]float64, 0, min(n, chunk))
	buf := make([]float64, min(n, chunk))
	for len(out) < n {
		b := buf[:min(n-len(out), chunk)]
		if err := binary.Read(r, binary.BigEndian, b); err != nil {
			return nil, truncated(err)
		}
		out = append(out, b...)
	}

	return out, nil
}

// truncated maps a clean EOF in the middle of a matrix to io.ErrUnexpectedEOF.
func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}
