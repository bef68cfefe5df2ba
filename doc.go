// Package ghep solves the generalized Hermitian eigenproblem A x = λ B x of
// the 1-D finite-element model pencil, the way the PETSc/SLEPc tutorial
// drivers do, in pure Go.
//
// Layout:
//
//	comm/    in-process "ranks": contiguous row ownership and a run-per-rank helper
//	matrix/  row-partitioned sparse matrix with staged insertion and two-phase assembly
//	builder/ stiffness (tridiag(-1, 2, -1)) and mass (tridiag(1/6, 2/3, 1/6)) constructors
//	matio/   PETSc binary and gonum binary matrix files
//	eigen/   HEP/GHEP/NHEP solver on gonum's dense factorizations, relative residuals
//	report/  "niterations=", "npairs=" and per-pair lines, or YAML/JSON documents
//	config/  flags, GHEP_* environment variables and -config files through viper
//	cli/     cobra commands, PETSc-style single-dash options, PETSc error numbers as exit codes
//	cmd/     the ex1, gen and solve programs
//
// Typical flow:
//
//	a, _ := builder.BuildRole(30, builder.RoleStiffness, matrix.WithRanks(2))
//	b, _ := builder.BuildRole(30, builder.RoleMass, matrix.WithRanks(2))
//	s := eigen.NewSolver(eigen.WithNev(1))
//	_ = s.SetOperators(a, b)
//	sol, _ := s.Solve()
//	_ = report.New(os.Stdout).Solution(sol)
package ghep
