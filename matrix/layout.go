// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ghep/comm"
)

// Layout describes how the global rows of a matrix are split across ranks.
// The zero value is not usable; build one with NewLayout.
type Layout struct {
	n     int // global rows
	ranks int // number of partitions
}

// NewLayout returns the layout of n rows over ranks partitions.
// Returns ErrInvalidDimensions when n <= 0 and ErrInvalidRank when ranks < 1.
func NewLayout(n, ranks int) (Layout, error) {
	if n <= 0 {
		return Layout{}, fmt.Errorf("NewLayout(n=%d): %w", n, ErrInvalidDimensions)
	}
	if ranks < 1 {
		return Layout{}, fmt.Errorf("NewLayout(ranks=%d): %w", ranks, ErrInvalidRank)
	}

	return Layout{n: n, ranks: ranks}, nil
}

// N returns the number of global rows.
func (l Layout) N() int { return l.n }

// Ranks returns the number of partitions.
func (l Layout) Ranks() int { return l.ranks }

// OwnershipRange returns the rows [lo, hi) owned by rank.
// Returns ErrInvalidRank when rank is outside [0, Ranks()).
// Complexity: O(1).
func (l Layout) OwnershipRange(rank int) (lo, hi int, err error) {
	if rank < 0 || rank >= l.ranks {
		return 0, 0, fmt.Errorf("Layout.OwnershipRange(%d): %w", rank, ErrInvalidRank)
	}
	lo, hi = comm.Split(l.n, l.ranks, rank)

	return lo, hi, nil
}

// Owner returns the rank that owns global row i.
// Returns ErrOutOfRange when i is outside [0, N()).
// Complexity: O(1).
func (l Layout) Owner(i int) (int, error) {
	if i < 0 || i >= l.n {
		return 0, fmt.Errorf("Layout.Owner(%d): %w", i, ErrOutOfRange)
	}

	return comm.OwnerOf(l.n, l.ranks, i), nil
}
