// Package eigen adapts assembled operators to gonum's dense LAPACK-backed
// eigensolvers and returns eigenpairs with relative residual estimates.
//
// Problem types:
//
//   - HEP:  A x = λ x with A symmetric (mat.EigenSym).
//   - GHEP: A x = λ B x with A symmetric and B symmetric positive definite.
//     B is factored B = UᵀU (mat.Cholesky), the standard problem
//     C y = λ y with C = U⁻ᵀ A U⁻¹ is solved with mat.EigenSym and x = U⁻¹ y.
//   - NHEP: A x = λ x for a general A (mat.Eigen); complex eigenvalues come
//     in conjugate pairs.
//
// Usage mirrors an EPS object:
//
//	s := eigen.NewSolver(eigen.WithNev(4), eigen.WithWhich(eigen.SmallestReal))
//	if err := s.SetOperators(a, b); err != nil { ... }
//	sol, err := s.Solve()
//	for i := 0; i < sol.Converged(); i++ {
//		p, _ := sol.Eigenpair(i)
//		_ = p.Error // ‖A x − λ B x‖₂ / (|λ| ‖x‖₂)
//	}
//
// The dense path is a single direct factorization, so Solution.Iterations is 1.
package eigen
