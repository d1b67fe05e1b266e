package board_test

import (
	"testing"

	"github.com/katalvlaran/knightour/board"
)

// BenchmarkNew measures board construction on a 100×100 grid with a
// diagonal obstacle strip.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	obstacles := make([]board.Coord, 0, 50)
	for i := 0; i < 50; i++ {
		obstacles = append(obstacles, board.Coord{X: i, Y: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := board.New(100, 100, obstacles); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkMarkUnmark measures the hot-path cell writes the engines issue
// on every placement and backtrack.
func BenchmarkMarkUnmark(b *testing.B) {
	bd, err := board.New(8, 8, nil)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	p := bd.Padded(board.Coord{X: 3, Y: 3})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd.Mark(p.X, p.Y, i)
		bd.Unmark(p.X, p.Y)
	}
}
