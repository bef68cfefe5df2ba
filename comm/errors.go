// SPDX-License-Identifier: MIT

package comm

import "errors"

var (
	// ErrInvalidSize is returned when a world or split is requested for fewer than one rank.
	ErrInvalidSize = errors.New("comm: world size must be >= 1")

	// ErrInvalidRank indicates a rank outside [0, Size()).
	ErrInvalidRank = errors.New("comm: rank out of range")
)
