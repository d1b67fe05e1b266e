package solver_test

import (
	"testing"

	"github.com/katalvlaran/knightour/order"
	"github.com/katalvlaran/knightour/solver"
)

// Benchmarks cover the two practical workloads: a heuristic-guided tour
// on the full chessboard and the symmetric half-search. Deterministic
// inputs; the run-to-run variance is allocator noise only.

func BenchmarkSolve_8x8Warnsdorff(b *testing.B) {
	opts := solver.DefaultOptions(8, 8)
	opts.Heuristic = order.Warnsdorff
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_5x5Plain(b *testing.B) {
	opts := solver.DefaultOptions(5, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_PointSymmetric6x6(b *testing.B) {
	opts := solver.DefaultOptions(6, 6)
	opts.Heuristic = order.Warnsdorff
	opts.Symmetry = solver.SymPoint
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(opts); err != nil {
			b.Fatal(err)
		}
	}
}
