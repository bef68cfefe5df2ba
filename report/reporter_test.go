// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/ghep/eigen"
	"github.com/katalvlaran/ghep/report"
)

func TestFormatPair(t *testing.T) {
	t.Parallel()
	tests := []struct {
		re, im, err float64
		want        string
	}{
		{3.989739, 0, 1.5e-15, "    3.989739      1.5e-15"},
		{0, 1, 2e-16, " 0.000000+1.000000i        2e-16"},
		{0.5, -0.25, 0.001, " 0.500000-0.250000i        0.001"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, report.FormatPair(tc.re, tc.im, tc.err))
	}
	require.NotContains(t, report.FormatPair(1, 0, 0), "i")
}

func TestReporter_TextLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := report.New(&buf)
	r.Iterations(1)
	r.Converged(2)
	r.Pair(2, 0, 1e-15)
	r.Pair(0, -1, 1e-16)
	require.NoError(t, r.Err())
	require.Equal(t, "niterations=1\nnpairs=2\n    2.000000        1e-15\n 0.000000-1.000000i        1e-16\n", buf.String())

	buf.Reset()
	r = report.New(&buf, report.WithPairsLabel(report.LabelEigenpairs))
	r.Converged(0)
	require.Equal(t, "neigenpairs=0\n", buf.String())
}

func rotationSolution(t *testing.T) *eigen.Solution {
	t.Helper()
	s := eigen.NewSolver(eigen.WithNev(2))
	require.NoError(t, s.SetOperators(mat.NewDense(2, 2, []float64{0, -1, 1, 0}), nil))
	require.NoError(t, s.SetProblemType(eigen.NHEP))
	sol, err := s.Solve()
	require.NoError(t, err)
	return sol
}

func TestReporter_Solution(t *testing.T) {
	t.Parallel()
	sol := rotationSolution(t)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Solution(sol))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "niterations=1", lines[0])
	require.Equal(t, "npairs=2", lines[1])
	require.Contains(t, lines[2], "+1.000000i")
	require.Contains(t, lines[3], "-1.000000i")

	require.ErrorIs(t, report.New(&buf).Solution(nil), report.ErrNilSolution)
}

func TestReporter_Documents(t *testing.T) {
	t.Parallel()
	sol := rotationSolution(t)

	var js bytes.Buffer
	require.NoError(t, report.New(&js, report.WithFormat(report.FormatJSON)).Solution(sol))
	var doc report.Document
	require.NoError(t, json.Unmarshal(js.Bytes(), &doc))
	require.Equal(t, "nhep", doc.Problem)
	require.Equal(t, 1, doc.Iterations)
	require.Equal(t, 2, doc.Pairs)
	require.Len(t, doc.Eigenpairs, 2)
	require.InDelta(t, 1, doc.Eigenpairs[0].Imag, 1e-12)

	var ym bytes.Buffer
	require.NoError(t, report.New(&ym, report.WithFormat(report.FormatYAML)).Solution(sol))
	require.Contains(t, ym.String(), "niterations: 1")
	var fromYAML report.Document
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	require.Equal(t, doc, fromYAML)
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestReporter_StickyError(t *testing.T) {
	t.Parallel()
	w := &failingWriter{}
	r := report.New(w)
	r.Iterations(1)
	r.Converged(1)
	r.Pair(1, 0, 0)
	require.Error(t, r.Err())
	require.Equal(t, 1, w.calls) // writes stop after the first failure
}

func TestParse(t *testing.T) {
	t.Parallel()
	f, err := report.ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, report.FormatYAML, f)
	_, err = report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	l, err := report.ParseLabel("neigenpairs")
	require.NoError(t, err)
	require.Equal(t, report.LabelEigenpairs, l)
	_, err = report.ParseLabel("pairs")
	require.ErrorIs(t, err, report.ErrUnknownLabel)

	require.Panics(t, func() { report.WithFormat(report.Format(5)) })
	require.Panics(t, func() { report.WithPairsLabel("n") })
	require.Equal(t, "json", report.FormatJSON.String())
}
