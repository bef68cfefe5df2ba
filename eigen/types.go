// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"strings"
)

// ProblemType selects the eigenproblem formulation.
type ProblemType int

const (
	// ProblemAuto resolves to HEP without B and to GHEP with B.
	ProblemAuto ProblemType = iota
	// HEP is the standard Hermitian problem A x = λ x.
	HEP
	// GHEP is the generalized Hermitian problem A x = λ B x, B positive definite.
	GHEP
	// NHEP is the standard non-Hermitian problem A x = λ x.
	NHEP
)

// String returns the lowercase SLEPc name ("hep", "ghep", "nhep", "auto").
func (p ProblemType) String() string {
	switch p {
	case ProblemAuto:
		return "auto"
	case HEP:
		return "hep"
	case GHEP:
		return "ghep"
	case NHEP:
		return "nhep"
	default:
		return fmt.Sprintf("ProblemType(%d)", int(p))
	}
}

func (p ProblemType) valid() bool { return p >= ProblemAuto && p <= NHEP }

// ParseProblemType maps "hep", "ghep", "nhep" or "auto" (case-insensitive).
func ParseProblemType(s string) (ProblemType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ProblemAuto, nil
	case "hep":
		return HEP, nil
	case "ghep":
		return GHEP, nil
	case "nhep":
		return NHEP, nil
	default:
		return 0, fmt.Errorf("ParseProblemType(%q): %w", s, ErrProblemType)
	}
}

// Which selects the part of the spectrum that is returned first.
type Which int

const (
	// LargestMagnitude orders by decreasing |λ|.
	LargestMagnitude Which = iota
	// SmallestMagnitude orders by increasing |λ|.
	SmallestMagnitude
	// LargestReal orders by decreasing Re λ.
	LargestReal
	// SmallestReal orders by increasing Re λ.
	SmallestReal
)

var whichNames = [...]string{
	LargestMagnitude:  "largest_magnitude",
	SmallestMagnitude: "smallest_magnitude",
	LargestReal:       "largest_real",
	SmallestReal:      "smallest_real",
}

// String returns the option spelling, e.g. "largest_magnitude".
func (w Which) String() string {
	if w.valid() {
		return whichNames[w]
	}

	return fmt.Sprintf("Which(%d)", int(w))
}

func (w Which) valid() bool { return w >= LargestMagnitude && w <= SmallestReal }

// ParseWhich accepts the String spelling with '-' or '_' separators.
func ParseWhich(s string) (Which, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for w, name := range whichNames {
		if name == norm {
			return Which(w), nil
		}
	}

	return 0, fmt.Errorf("ParseWhich(%q): %w", s, ErrUnknownWhich)
}
