// SPDX-License-Identifier: MIT

package matio

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ghep/matrix"
)

// writeGonum stores m densely with gonum's MarshalBinaryTo.
func writeGonum(w io.Writer, m *matrix.Sparse) error {
	d, err := m.ToDense()
	if err != nil {
		return fmt.Errorf("writeGonum: %w", err)
	}
	if _, err = d.MarshalBinaryTo(w); err != nil {
		return fmt.Errorf("writeGonum: %w", err)
	}

	return nil
}

// readGonum decodes a gonum mat.Dense and keeps its non-zero entries.
func readGonum(r io.Reader, opts ...matrix.Option) (*matrix.Sparse, error) {
	var d mat.Dense
	if _, err := d.UnmarshalBinaryFrom(r); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("readGonum: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("readGonum: %v: %w", err, ErrCorrupt)
	}
	m, err := matrix.FromDense(&d, opts...)
	if err != nil {
		return nil, fmt.Errorf("readGonum: %w", err)
	}

	return m, nil
}
