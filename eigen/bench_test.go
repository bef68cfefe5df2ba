package eigen_test

import (
	"testing"

	"github.com/katalvlaran/ghep/builder"
	"github.com/katalvlaran/ghep/eigen"
)

// benchmarkGHEP solves the n×n stiffness/mass pencil for nev pairs.
func benchmarkGHEP(b *testing.B, n, nev int) {
	a, err := builder.BuildRole(n, builder.RoleStiffness)
	if err != nil {
		b.Fatal(err)
	}
	m, err := builder.BuildRole(n, builder.RoleMass)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		s := eigen.NewSolver(eigen.WithNev(nev))
		if err := s.SetOperators(a, m); err != nil {
			b.Fatalf("SetOperators failed: %v", err)
		}
		if _, err := s.Solve(); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkGHEP_Small is the default problem size of the drivers.
func BenchmarkGHEP_Small(b *testing.B) { benchmarkGHEP(b, 30, 1) }

// BenchmarkGHEP_Medium solves n = 300 for five pairs.
func BenchmarkGHEP_Medium(b *testing.B) { benchmarkGHEP(b, 300, 5) }
