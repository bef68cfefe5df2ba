// SPDX-License-Identifier: MIT

package comm

import "golang.org/x/exp/constraints"

// Split returns the half-open row range [lo, hi) owned by rank when n rows are
// divided among size ranks.
//
// Every rank owns n/size rows and the first n%size ranks own one more, so the
// ranges are contiguous, ordered by rank and cover [0, n) exactly once. Ranks
// beyond n own an empty range when size > n.
//
// The caller guarantees size >= 1, n >= 0 and 0 <= rank < size; Split does no
// validation so it can sit in hot loops (see World.Range for the checked form).
//
// Complexity: O(1).
func Split[T constraints.Integer](n, size, rank T) (lo, hi T) {
	local := n / size
	extra := n % size
	if rank < extra {
		lo = rank * (local + 1)
		return lo, lo + local + 1
	}
	lo = extra*(local+1) + (rank-extra)*local

	return lo, lo + local
}

// OwnerOf returns the rank owning row under the same split as Split.
// The caller guarantees 0 <= row < n.
//
// Complexity: O(1).
func OwnerOf[T constraints.Integer](n, size, row T) T {
	local := n / size
	extra := n % size
	// rows [0, extra*(local+1)) belong to the "long" ranks.
	boundary := extra * (local + 1)
	if row < boundary {
		return row / (local + 1)
	}

	return extra + (row-boundary)/local
}
