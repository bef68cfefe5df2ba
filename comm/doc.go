// SPDX-License-Identifier: MIT

// Package comm provides the in-process communicator used by the row-partitioned
// matrices of this module.
//
// A World is a fixed set of ranks 0..Size()-1. Ranks are goroutines inside one
// process: World.Run executes a function once per rank concurrently and returns
// when every rank has finished, which makes each Run a collective barrier.
//
// Split computes the contiguous row range a rank owns when n rows are divided
// among size ranks. The split is the PETSc PETSC_DECIDE one: the first n%size
// ranks own one extra row.
//
// AI-Hints:
//   - Use Root for "print once" decisions (rank 0 owns the report).
//   - A World of size 1 is the serial case; every algorithm must work there.
package comm
