// Package matio persists *matrix.Sparse values to disk and back.
//
// Two encodings are supported:
//
//   - FormatPETSc: the PETSc binary matrix layout (big-endian classid 1211216,
//     rows, cols, nnz, row lengths, column indices, values). Files written by
//     PETSc's MatView on a binary viewer load here and vice versa.
//   - FormatGonum: gonum's native mat.Dense binary encoding
//     (MarshalBinaryTo/UnmarshalBinaryFrom).
//
// Read and Load detect the encoding from the first four bytes. Every failure
// is returned as an error wrapping one of the package sentinels or
// io.ErrUnexpectedEOF for a truncated stream.
package matio
