// SPDX-License-Identifier: MIT

package matio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/matrix"
)

// Write encodes the assembled matrix m to w in format f.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotAssembled for unusable input.
//   - ErrUnknownFormat for an undeclared f; ErrTooLarge past the PETSc int32 limits.
//   - Errors of w, wrapped.
func Write(w io.Writer, m *matrix.Sparse, f Format) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if !m.Assembled() {
		return fmt.Errorf("Write: %w", matrix.ErrNotAssembled)
	}
	switch f {
	case FormatPETSc:
		return writePETSc(w, m)
	case FormatGonum:
		return writeGonum(w, m)
	default:
		return fmt.Errorf("Write(%v): %w", f, ErrUnknownFormat)
	}
}

// Read decodes one matrix from r, detecting the format from its signature.
// opts configure the resulting *matrix.Sparse (ranks, numeric policy).
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Sparse, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(signatureLen)
	if err != nil {
		return nil, fmt.Errorf("Read: signature: %w", truncated(err))
	}
	f, err := Detect(head)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if f == FormatGonum {
		return readGonum(br, opts...)
	}

	return readPETSc(br, opts...)
}

// Save writes m to path in format f, creating or truncating the file.
//
// Errors:
//   - ErrOpen when the file cannot be created.
//   - ErrWrite when encoding or closing fails (the os error is kept in the chain).
func Save(path string, m *matrix.Sparse, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save(%q): %w: %w", path, ErrOpen, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save(%q): close: %w: %w", path, ErrWrite, cerr)
		}
	}()

	if err = Write(file, m, f); err != nil {
		if errors.Is(err, matrix.ErrNotAssembled) || errors.Is(err, ErrUnknownFormat) || errors.Is(err, matrix.ErrNilMatrix) {
			return fmt.Errorf("Save(%q): %w", path, err)
		}
		return fmt.Errorf("Save(%q): %w: %w", path, ErrWrite, err)
	}
	klog.V(2).InfoS("Matrix saved", "path", path, "format", f, "matrix", m)

	return nil
}

// Load reads the matrix stored at path.
//
// Errors:
//   - ErrOpen when the file cannot be opened.
//   - Every Read error otherwise.
func Load(path string, opts ...matrix.Option) (*matrix.Sparse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w: %w", path, ErrOpen, err)
	}
	defer file.Close()

	m, err := Read(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	klog.V(2).InfoS("Matrix loaded", "path", path, "matrix", m)

	return m, nil
}
