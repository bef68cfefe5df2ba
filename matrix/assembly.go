// SPDX-License-Identifier: MIT

// Package matrix - two-phase assembly (staged COO → CSR).
//
// AssemblyBegin freezes the matrix and starts compacting every Part on its own
// goroutine: staged triplets are stable-sorted by (row, col) and duplicates are
// merged by the insert mode. AssemblyEnd waits for the compaction and stitches
// the per-Part rows, in rank order, into the global CSR arrays. Ranks own
// contiguous ascending row ranges, so the stitch is a plain concatenation.
package matrix

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	ctxBegin = "Sparse.AssemblyBegin"
	ctxEnd   = "Sparse.AssemblyEnd"
)

// AssemblyBegin starts the commit and returns without waiting for it.
// No write is accepted afterwards.
//
// Errors:
//   - ErrAssembled when assembly already started.
func (m *Sparse) AssemblyBegin() error {
	if !m.state.CompareAndSwap(stateBuilding, stateAssembling) {
		return fmt.Errorf("%s: %w", ctxBegin, ErrAssembled)
	}
	g := new(errgroup.Group)
	for _, p := range m.parts {
		g.Go(p.compact)
	}
	m.pending = g

	return nil
}

// AssemblyEnd waits for AssemblyBegin's work and makes the matrix readable.
// Calling it again on an assembled matrix is a no-op.
//
// Errors:
//   - ErrNotAssembled when AssemblyBegin was not called.
func (m *Sparse) AssemblyEnd() error {
	switch m.state.Load() {
	case stateBuilding:
		return fmt.Errorf("%s: AssemblyBegin not called: %w", ctxEnd, ErrNotAssembled)
	case stateAssembled:
		return nil
	}
	if err := m.pending.Wait(); err != nil {
		return fmt.Errorf("%s: %w", ctxEnd, err)
	}
	m.pending = nil

	nnz := 0
	for _, p := range m.parts {
		nnz += len(p.colIdx)
	}
	m.rowPtr = make([]int, m.layout.n+1)
	m.colIdx = make([]int, 0, nnz)
	m.vals = make([]float64, 0, nnz)

	row := 0
	for _, p := range m.parts {
		for _, l := range p.rowLen {
			m.rowPtr[row+1] = m.rowPtr[row] + l
			row++
		}
		m.colIdx = append(m.colIdx, p.colIdx...)
		m.vals = append(m.vals, p.vals...)
		p.rowLen, p.colIdx, p.vals = nil, nil, nil // CSR now owns the data
	}
	m.state.Store(stateAssembled)

	return nil
}

// Assemble runs AssemblyBegin followed by AssemblyEnd.
func (m *Sparse) Assemble() error {
	if err := m.AssemblyBegin(); err != nil {
		return err
	}

	return m.AssemblyEnd()
}

// compact turns the staged triplets of p into sorted, duplicate-free rows.
// Complexity: O(k log k) for k staged writes.
func (p *Part) compact() error {
	staged := p.staged
	sort.SliceStable(staged, func(a, b int) bool {
		if staged[a].i != staged[b].i {
			return staged[a].i < staged[b].i
		}
		return staged[a].j < staged[b].j
	})

	add := p.owner.opts.mode == AddValues
	p.rowLen = make([]int, p.hi-p.lo)
	p.colIdx = make([]int, 0, len(staged))
	p.vals = make([]float64, 0, len(staged))
	for k := 0; k < len(staged); {
		e := staged[k]
		v := e.v
		next := k + 1
		for next < len(staged) && staged[next].i == e.i && staged[next].j == e.j {
			if add {
				v += staged[next].v
			} else {
				v = staged[next].v // later write wins; the sort is stable
			}
			next++
		}
		p.colIdx = append(p.colIdx, e.j)
		p.vals = append(p.vals, v)
		p.rowLen[e.i-p.lo]++
		k = next
	}
	p.staged = nil

	return nil
}
