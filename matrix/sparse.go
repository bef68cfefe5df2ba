// SPDX-License-Identifier: MIT

// Package matrix - row-partitioned sparse storage & gonum-facing accessors.
//
// Purpose:
//   - Hold an r×c matrix whose rows are split across Parts (ranks) by a Layout.
//   - Stage writes per Part as COO triplets, then commit them into one CSR
//     (rowPtr/colIdx/vals) with the two-phase AssemblyBegin/AssemblyEnd.
//   - Expose the assembled matrix through gonum's mat.Matrix so LAPACK-backed
//     routines can consume it without an intermediate format.
//
// AI-Hints:
//   - Populate through Part.Set from one goroutine per rank (see builder.Build);
//     SetValue is the serial convenience that routes a global row to its owner.
//   - Prefer DoNonZero/MulVecTo over At in loops: At is a binary search per call.
//
// Complexity quicksheet:
//   - Set: O(1) amortized; AssemblyBegin+End: O(nnz log nnz_part);
//     At/Value: O(log row_nnz); MulVecTo: O(nnz); DoNonZero: O(nnz).
package matrix

import (
	"fmt"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewSparse"
	ctxSet      = "Set"
	ctxSetValue = "SetValue"
	ctxValue    = "Value"
	ctxMulVec   = "MulVecTo"
	ctxPart     = "Part"
)

// sparseErrorf wraps err with the Sparse method tag and the coordinates.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a row-partitioned sparse matrix.
//   - layout splits the rows across len(parts) ranks.
//   - before assembly, each Part stages its own writes; after AssemblyEnd the
//     rows live in CSR form: row i spans colIdx/vals[rowPtr[i]:rowPtr[i+1]],
//     with ascending column indices.
type Sparse struct {
	layout Layout
	cols   int
	opts   Options
	parts  []*Part

	state   atomic.Int32    // stateBuilding → stateAssembling → stateAssembled
	pending *errgroup.Group // compaction started by AssemblyBegin

	rowPtr []int
	colIdx []int
	vals   []float64
}

// Compile-time assertions for the gonum interfaces Sparse satisfies.
var (
	_ mat.Matrix         = (*Sparse)(nil)
	_ mat.NonZeroDoer    = (*Sparse)(nil)
	_ mat.RowNonZeroDoer = (*Sparse)(nil)
	_ fmt.Stringer       = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols matrix split over the configured ranks.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(ranks), Space O(ranks); row storage is allocated at assembly.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	layout, err := NewLayout(rows, o.ranks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	m := &Sparse{layout: layout, cols: cols, opts: o}
	m.parts = make([]*Part, o.ranks)
	for rank := range m.parts {
		lo, hi, _ := layout.OwnershipRange(rank) // rank < Ranks() by construction
		m.parts[rank] = &Part{owner: m, rank: rank, lo: lo, hi: hi}
	}

	return m, nil
}

// Layout returns the row split of m.
func (m *Sparse) Layout() Layout { return m.layout }

// Part returns the partition owned by rank.
// Returns ErrInvalidRank for a rank outside the layout.
func (m *Sparse) Part(rank int) (*Part, error) {
	if rank < 0 || rank >= len(m.parts) {
		return nil, fmt.Errorf("Sparse.%s(%d): %w", ctxPart, rank, ErrInvalidRank)
	}

	return m.parts[rank], nil
}

// SetValue stages v at global (i, j) in the Part that owns row i.
// It is meant for serial population; concurrent writers must use their own Part.
func (m *Sparse) SetValue(i, j int, v float64) error {
	rank, err := m.layout.Owner(i)
	if err != nil {
		return sparseErrorf(ctxSetValue, i, j, ErrOutOfRange)
	}

	return m.parts[rank].Set(i, j, v)
}

// Assembled reports whether AssemblyEnd completed.
func (m *Sparse) Assembled() bool { return m.state.Load() == stateAssembled }

// Dims returns the global dimensions (gonum mat.Matrix).
func (m *Sparse) Dims() (r, c int) { return m.layout.n, m.cols }

// T returns the implicit transpose (gonum mat.Matrix).
func (m *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored entries; zero before assembly.
func (m *Sparse) NNZ() int {
	if !m.Assembled() {
		return 0
	}

	return len(m.vals)
}

// Value returns the entry at (i, j); structurally absent entries are 0.
//
// Errors:
//   - ErrNotAssembled before AssemblyEnd.
//   - ErrOutOfRange for invalid indices.
//
// Complexity:
//   - Time O(log k) with k the stored entries of row i.
func (m *Sparse) Value(i, j int) (float64, error) {
	if !m.Assembled() {
		return 0, sparseErrorf(ctxValue, i, j, ErrNotAssembled)
	}
	if i < 0 || i >= m.layout.n || j < 0 || j >= m.cols {
		return 0, sparseErrorf(ctxValue, i, j, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.vals[k], nil
	}

	return 0, nil
}

// At returns the entry at (i, j) (gonum mat.Matrix).
// Following gonum, it panics on invalid indices or an unassembled matrix;
// use Value for the error-returning form.
func (m *Sparse) At(i, j int) float64 {
	v, err := m.Value(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// DoNonZero calls fn for every stored entry in row-major order (gonum mat.NonZeroDoer).
// Panics with ErrNotAssembled before assembly.
func (m *Sparse) DoNonZero(fn func(i, j int, v float64)) {
	m.mustAssembled()
	for i := 0; i < m.layout.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			fn(i, m.colIdx[k], m.vals[k])
		}
	}
}

// DoRowNonZero calls fn for every stored entry of row i (gonum mat.RowNonZeroDoer).
// Panics with ErrNotAssembled before assembly and ErrOutOfRange for a bad row.
func (m *Sparse) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	m.mustAssembled()
	if i < 0 || i >= m.layout.n {
		panic(sparseErrorf("DoRowNonZero", i, 0, ErrOutOfRange))
	}
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		fn(i, m.colIdx[k], m.vals[k])
	}
}

// MulVecTo computes dst = m·x. dst and x must not overlap.
//
// Rows are processed per Part; with more than one rank every Part runs on its
// own goroutine and writes only its own rows of dst.
//
// Errors:
//   - ErrNotAssembled before assembly.
//   - ErrDimensionMismatch when len(x) != Cols or len(dst) != Rows.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (m *Sparse) MulVecTo(dst, x []float64) error {
	if !m.Assembled() {
		return fmt.Errorf("Sparse.%s: %w", ctxMulVec, ErrNotAssembled)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return fmt.Errorf("Sparse.%s: x: %w", ctxMulVec, err)
	}
	if err := ValidateVecLen(dst, m.layout.n); err != nil {
		return fmt.Errorf("Sparse.%s: dst: %w", ctxMulVec, err)
	}

	rows := func(lo, hi int) {
		var sum float64
		for i := lo; i < hi; i++ {
			sum = 0
			for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
				sum += m.vals[k] * x[m.colIdx[k]]
			}
			dst[i] = sum
		}
	}
	if len(m.parts) == 1 {
		rows(0, m.layout.n)
		return nil
	}

	var g errgroup.Group
	for _, p := range m.parts {
		g.Go(func() error {
			rows(p.lo, p.hi)
			return nil
		})
	}

	return g.Wait()
}

// String renders a one-line summary for logs.
func (m *Sparse) String() string {
	if !m.Assembled() {
		return fmt.Sprintf("Sparse(%dx%d, ranks=%d, unassembled)", m.layout.n, m.cols, len(m.parts))
	}

	return fmt.Sprintf("Sparse(%dx%d, ranks=%d, nnz=%d)", m.layout.n, m.cols, len(m.parts), len(m.vals))
}

func (m *Sparse) mustAssembled() {
	if !m.Assembled() {
		panic(fmt.Errorf("Sparse: %w", ErrNotAssembled))
	}
}
