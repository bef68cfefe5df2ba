// Package builder assembles the tridiagonal operators of the 1-D finite
// element model problem: the stiffness matrix A (diagonal 2, off-diagonals -1)
// and the mass matrix B (diagonal 2/3, off-diagonals 1/6).
//
// The package follows the functional-options constructor pattern:
//
//   - Constructor:    fills one matrix.Part (the rows owned by one rank).
//   - Build:          creates a *matrix.Sparse, runs every Constructor on every
//     Part concurrently (one goroutine per rank through comm.World.Run), then
//     commits it with AssemblyBegin/AssemblyEnd.
//   - BuilderOption:  WithScale / WithShift tweak the coefficients; option
//     constructors panic on meaningless values, Build never panics.
//   - Role:           the stiffness/mass tag used by the drivers and files.
//
// Guarantees:
//
//   - Row 0 has no sub-diagonal entry and row n-1 no super-diagonal entry.
//   - The result does not depend on the number of ranks.
//   - Errors are sentinels wrapped with the constructor name; branch with errors.Is.
package builder
