// SPDX-License-Identifier: MIT

package matrix

import "math"

// Part is the slice of a Sparse owned by one rank: global rows [lo, hi).
//
// A Part is written by exactly one goroutine (its rank) before AssemblyBegin.
// Parts of the same matrix share nothing mutable, so ranks populate them
// concurrently without locks.
type Part struct {
	owner  *Sparse
	rank   int
	lo, hi int
	staged []entry

	// compacted rows, produced by AssemblyBegin and consumed by AssemblyEnd
	rowLen []int
	colIdx []int
	vals   []float64
}

// Rank returns the rank owning this Part.
func (p *Part) Rank() int { return p.rank }

// OwnershipRange returns the owned global rows [lo, hi). The range is empty when
// the matrix has fewer rows than ranks.
func (p *Part) OwnershipRange() (lo, hi int) { return p.lo, p.hi }

// Dims returns the global dimensions of the matrix this Part belongs to.
func (p *Part) Dims() (r, c int) { return p.owner.Dims() }

// Set stages v at global (i, j).
//
// Errors (checked in this order):
//   - ErrAssembled once AssemblyBegin was called.
//   - ErrOutOfRange when i or j is outside the global matrix.
//   - ErrNotOwned when row i is outside [lo, hi).
//   - ErrNaNInf for a non-finite v when the numeric policy is on.
//
// Complexity: O(1) amortized.
func (p *Part) Set(i, j int, v float64) error {
	m := p.owner
	if m.state.Load() != stateBuilding {
		return sparseErrorf(ctxSet, i, j, ErrAssembled)
	}
	if i < 0 || i >= m.layout.n || j < 0 || j >= m.cols {
		return sparseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if i < p.lo || i >= p.hi {
		return sparseErrorf(ctxSet, i, j, ErrNotOwned)
	}
	if m.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	p.staged = append(p.staged, entry{i: i, j: j, v: v})

	return nil
}
