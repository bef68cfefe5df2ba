package comm_test

import (
	"testing"

	"github.com/katalvlaran/ghep/comm"
	"github.com/stretchr/testify/require"
)

// TestSplitCoversRows checks that ranges are contiguous, ordered and cover [0,n).
func TestSplitCoversRows(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, size int }{
		{30, 1}, {30, 4}, {31, 4}, {3, 8}, {0, 2}, {1, 1}, {7, 7},
	} {
		next := 0
		for rank := 0; rank < tc.size; rank++ {
			lo, hi := comm.Split(tc.n, tc.size, rank)
			require.Equal(t, next, lo, "n=%d size=%d rank=%d", tc.n, tc.size, rank) // contiguous
			require.GreaterOrEqual(t, hi, lo)                                        // non-negative length
			for row := lo; row < hi; row++ {
				require.Equal(t, rank, comm.OwnerOf(tc.n, tc.size, row)) // owner agrees with range
			}
			next = hi
		}
		require.Equal(t, tc.n, next) // full cover
	}
}

// TestSplitPETScShape pins the "first n%size ranks get one more row" rule.
func TestSplitPETScShape(t *testing.T) {
	t.Parallel()

	lo, hi := comm.Split(10, 3, 0)
	require.Equal(t, [2]int{0, 4}, [2]int{lo, hi})
	lo, hi = comm.Split(10, 3, 1)
	require.Equal(t, [2]int{4, 7}, [2]int{lo, hi})
	lo, hi = comm.Split(10, 3, 2)
	require.Equal(t, [2]int{7, 10}, [2]int{lo, hi})

	// Works for the int32 indices of on-disk formats too.
	lo32, hi32 := comm.Split[int32](5, 2, 1)
	require.Equal(t, int32(3), lo32)
	require.Equal(t, int32(5), hi32)
}
