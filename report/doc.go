// Package report prints eigensolver results.
//
// The text format is line oriented:
//
//	niterations=1
//	npairs=2
//	    3.989739 3.12456e-15
//	 0.000000+1.000000i 2.0305e-16
//
// A real eigenvalue is printed as "%12f %12g" (value, relative error), a
// complex one as "%9f%+9fi %12g". The count label is "npairs" by default and
// "neigenpairs" with WithPairsLabel(LabelEigenpairs). WithFormat selects a
// YAML or JSON document instead of the text lines.
package report
