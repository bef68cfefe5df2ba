// Package matrix provides the row-partitioned sparse matrix used by the
// eigenproblem drivers.
//
// The package provides:
//
//   - Layout: the PETSc-style split of n global rows across ranks (ownership ranges).
//   - Sparse: an n×m matrix whose rows are owned by Parts; each Part is populated
//     independently (one goroutine per rank) and the whole matrix is committed by a
//     two-phase AssemblyBegin/AssemblyEnd into compressed sparse rows (CSR).
//   - Conversions to and from gonum's mat types (Dense, SymDense), so an assembled
//     Sparse can be handed to gonum's LAPACK-backed factorizations directly; Sparse
//     itself satisfies mat.Matrix, mat.NonZeroDoer and mat.RowNonZeroDoer.
//   - Central validators (square, same shape, symmetric within eps).
//
// Lifecycle of a Sparse:
//
//	NewSparse → Part(rank).Set(...) per rank → AssemblyBegin → AssemblyEnd → reads
//
// Writes are only legal before AssemblyBegin and only inside the writing Part's
// ownership range; reads are only legal after AssemblyEnd.
package matrix
