// Package cli implements the three driver commands on top of cobra:
//
//   - ex1:   build A (and B), solve in-process, print the report.
//   - gen:   build A and B and save them (A.bin, B.bin).
//   - solve: load -fileA/-fileB, solve, print the report.
//
// PETSc-style single-dash long options (-n 30, -fileA A.bin) are accepted
// next to the GNU spelling. Execute maps every failure to a PETSc error
// number used as the process exit code; the report is the only stdout output.
package cli
