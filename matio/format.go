// SPDX-License-Identifier: MIT

package matio

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Format selects the on-disk encoding.
type Format int

const (
	// FormatPETSc is the PETSc binary matrix layout (the default).
	FormatPETSc Format = iota
	// FormatGonum is gonum's mat.Dense binary encoding.
	FormatGonum
)

const (
	// petscMatClassID is MAT_FILE_CLASSID of PETSc.
	petscMatClassID = 1211216
	// gonumVersion is the little-endian version word leading gonum's header.
	gonumVersion = 1
	// signatureLen is the number of leading bytes Detect needs.
	signatureLen = 4
)

// String returns "petsc", "gonum" or "Format(<n>)".
func (f Format) String() string {
	switch f {
	case FormatPETSc:
		return "petsc"
	case FormatGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "petsc" or "gonum" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "petsc":
		return FormatPETSc, nil
	case "gonum":
		return FormatGonum, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Detect identifies the encoding from the first four bytes of a stream.
func Detect(head []byte) (Format, error) {
	if len(head) < signatureLen {
		return 0, fmt.Errorf("Detect: %d bytes: %w", len(head), ErrUnknownFormat)
	}
	switch {
	case binary.BigEndian.Uint32(head) == petscMatClassID:
		return FormatPETSc, nil
	case binary.LittleEndian.Uint32(head) == gonumVersion:
		return FormatGonum, nil
	default:
		return 0, fmt.Errorf("Detect(% x): %w", head[:signatureLen], ErrUnknownFormat)
	}
}
