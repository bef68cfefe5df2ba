// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/ghep/eigen"
)

const (
	realPairFormat    = "%12f %12g"
	complexPairFormat = "%9f%+9fi %12g"
)

// FormatPair renders one eigenpair line without the trailing newline.
func FormatPair(re, im, relErr float64) string {
	if im != 0 {
		return fmt.Sprintf(complexPairFormat, re, im, relErr)
	}

	return fmt.Sprintf(realPairFormat, re, relErr)
}

// Reporter writes results to w. The first write error is kept: later calls
// become no-ops and Err returns it.
type Reporter struct {
	w    io.Writer
	opts Options
	err  error
}

// New returns a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	return &Reporter{w: w, opts: gatherOptions(opts...)}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error { return r.err }

// Iterations prints "niterations=<n>".
func (r *Reporter) Iterations(n int) { r.printf("niterations=%d\n", n) }

// Converged prints "<label>=<n>".
func (r *Reporter) Converged(n int) { r.printf("%s=%d\n", r.opts.label, n) }

// Pair prints one eigenpair line (see FormatPair).
func (r *Reporter) Pair(re, im, relErr float64) { r.printf("%s\n", FormatPair(re, im, relErr)) }

// Solution writes the whole report of sol in the configured format and
// returns the first error.
func (r *Reporter) Solution(sol *eigen.Solution) error {
	if sol == nil {
		return fmt.Errorf("Reporter.Solution: %w", ErrNilSolution)
	}
	if r.opts.format != FormatText {
		return r.document(sol)
	}

	r.Iterations(sol.Iterations)
	r.Converged(sol.Converged())
	for _, p := range sol.Eigenpairs() {
		r.Pair(p.Real, p.Imag, p.Error)
	}

	return r.err
}

// Document is the structured form of a report.
type Document struct {
	Problem    string         `json:"problem"`
	Iterations int            `json:"niterations"`
	Pairs      int            `json:"npairs"`
	Eigenpairs []DocumentPair `json:"eigenpairs"`
}

// DocumentPair is one eigenpair of a Document.
type DocumentPair struct {
	Real  float64 `json:"real"`
	Imag  float64 `json:"imag"`
	Error float64 `json:"error"`
}

// NewDocument converts sol into its structured form.
func NewDocument(sol *eigen.Solution) Document {
	doc := Document{
		Problem:    sol.Problem.String(),
		Iterations: sol.Iterations,
		Pairs:      sol.Converged(),
		Eigenpairs: make([]DocumentPair, 0, sol.Converged()),
	}
	for _, p := range sol.Eigenpairs() {
		doc.Eigenpairs = append(doc.Eigenpairs, DocumentPair{Real: p.Real, Imag: p.Imag, Error: p.Error})
	}

	return doc
}

func (r *Reporter) document(sol *eigen.Solution) error {
	if r.err != nil {
		return r.err
	}
	doc := NewDocument(sol)

	var (
		out []byte
		err error
	)
	if r.opts.format == FormatYAML {
		out, err = yaml.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		r.err = fmt.Errorf("Reporter.Solution(%v): %w", r.opts.format, err)
		return r.err
	}
	if _, err = r.w.Write(out); err != nil {
		r.err = fmt.Errorf("Reporter.Solution(%v): %w", r.opts.format, err)
	}

	return r.err
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = fmt.Errorf("report: %w", err)
	}
}
