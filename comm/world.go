// SPDX-License-Identifier: MIT

package comm

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Root is the rank 0 member; drivers print and write files from it.
const Root = 0

// World is a communicator over Size() in-process ranks. It is immutable and
// safe for concurrent use.
type World struct {
	size int
}

// NewWorld returns a world of the given number of ranks.
// Returns ErrInvalidSize when size < 1.
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewWorld(%d): %w", size, ErrInvalidSize)
	}

	return &World{size: size}, nil
}

// Size returns the number of ranks.
func (w *World) Size() int { return w.size }

// Range returns the rows [lo, hi) that rank owns out of n under Split.
// Returns ErrInvalidRank when rank is outside the world.
func (w *World) Range(n, rank int) (lo, hi int, err error) {
	if rank < 0 || rank >= w.size {
		return 0, 0, fmt.Errorf("World.Range(rank=%d, size=%d): %w", rank, w.size, ErrInvalidRank)
	}
	lo, hi = Split(n, w.size, rank)

	return lo, hi, nil
}

// Run calls fn once for every rank concurrently and waits for all of them.
//
// Run is collective: it returns only when every rank has returned, which makes
// it the barrier between phases (populate, then assemble). The first non-nil
// error is returned wrapped with the failing rank; the other ranks still run to
// completion since they do not share state with the failing one.
//
// Complexity: O(Size()) goroutines; fn cost dominates.
func (w *World) Run(fn func(rank int) error) error {
	if w.size == 1 {
		// Serial world: no goroutine needed.
		if err := fn(Root); err != nil {
			return fmt.Errorf("rank %d: %w", Root, err)
		}
		return nil
	}

	var g errgroup.Group
	for rank := 0; rank < w.size; rank++ {
		g.Go(func() error {
			if err := fn(rank); err != nil {
				return fmt.Errorf("rank %d: %w", rank, err)
			}
			return nil
		})
	}

	return g.Wait()
}
