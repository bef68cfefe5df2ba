// SPDX-License-Identifier: MIT

package matio

import "errors"

var (
	// ErrUnknownFormat indicates an unrecognised format name or file signature.
	ErrUnknownFormat = errors.New("matio: unknown matrix file format")

	// ErrBadHeader indicates a PETSc header with a wrong classid or impossible sizes.
	ErrBadHeader = errors.New("matio: malformed matrix header")

	// ErrCorrupt indicates a payload inconsistent with its header.
	ErrCorrupt = errors.New("matio: corrupt matrix payload")

	// ErrTooLarge indicates a matrix that does not fit the int32 PETSc header.
	ErrTooLarge = errors.New("matio: matrix too large for the format")

	// ErrOpen indicates the file could not be opened or created.
	ErrOpen = errors.New("matio: cannot open file")

	// ErrWrite indicates a failure while writing or closing the file.
	ErrWrite = errors.New("matio: cannot write file")
)
