// SPDX-License-Identifier: MIT

package eigen

import (
	"math/cmplx"
	"sort"
)

// order returns the indices of values sorted by which. Equal keys put the
// larger imaginary part first, then keep the backend order.
func order(values []complex128, which Which) []int {
	key := func(z complex128) float64 {
		if which == LargestMagnitude || which == SmallestMagnitude {
			return cmplx.Abs(z)
		}
		return real(z)
	}
	desc := which == LargestMagnitude || which == LargestReal

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(p, q int) bool {
		zp, zq := values[idx[p]], values[idx[q]]
		kp, kq := key(zp), key(zq)
		if kp != kq {
			if desc {
				return kp > kq
			}
			return kp < kq
		}
		return imag(zp) > imag(zq)
	})

	return idx
}
