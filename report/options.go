// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"
)

// Label is the key of the converged-count line.
type Label string

const (
	// LabelPairs prints "npairs=<k>".
	LabelPairs Label = "npairs"
	// LabelEigenpairs prints "neigenpairs=<k>".
	LabelEigenpairs Label = "neigenpairs"
)

// ParseLabel accepts "npairs" or "neigenpairs".
func ParseLabel(s string) (Label, error) {
	switch l := Label(strings.ToLower(strings.TrimSpace(s))); l {
	case LabelPairs, LabelEigenpairs:
		return l, nil
	default:
		return "", fmt.Errorf("ParseLabel(%q): %w", s, ErrUnknownLabel)
	}
}

// Format is the report encoding.
type Format int

const (
	// FormatText prints the line-oriented report.
	FormatText Format = iota
	// FormatYAML prints one YAML document.
	FormatYAML
	// FormatJSON prints one indented JSON document.
	FormatJSON
)

// String returns "text", "yaml", "json" or "Format(<n>)".
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "text", "yaml" or "json" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Option configures a Reporter.
type Option func(*Options)

// Options is the resolved Reporter configuration.
type Options struct {
	label  Label
	format Format
}

// WithPairsLabel selects the count label. Panics on an unknown label.
func WithPairsLabel(l Label) Option {
	if l != LabelPairs && l != LabelEigenpairs {
		panic("report: WithPairsLabel: unknown label " + string(l))
	}

	return func(o *Options) { o.label = l }
}

// WithFormat selects the encoding. Panics on an unknown format.
func WithFormat(f Format) Option {
	if f < FormatText || f > FormatJSON {
		panic("report: WithFormat: unknown format")
	}

	return func(o *Options) { o.format = f }
}

func gatherOptions(opts ...Option) Options {
	o := Options{label: LabelPairs, format: FormatText}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
