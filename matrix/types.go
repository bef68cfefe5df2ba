// SPDX-License-Identifier: MIT

// Package matrix: small domain types shared by Sparse, Part and the assembly.
package matrix

// InsertMode decides how several writes to the same (i,j) before assembly combine.
type InsertMode int

const (
	// InsertValues keeps the last written value (PETSc INSERT_VALUES).
	InsertValues InsertMode = iota
	// AddValues sums every written value (PETSc ADD_VALUES).
	AddValues
)

// String returns the mode name.
func (m InsertMode) String() string {
	switch m {
	case InsertValues:
		return "insert"
	case AddValues:
		return "add"
	default:
		return "unknown"
	}
}

// entry is one staged write (COO triplet). Staged entries are sorted with a
// stable sort, so insertion order survives for InsertValues.
type entry struct {
	i, j int
	v    float64
}

// assembly states of a Sparse.
const (
	stateBuilding int32 = iota // accepting writes
	stateAssembling            // AssemblyBegin called, compaction running
	stateAssembled             // CSR ready, reads allowed
)
