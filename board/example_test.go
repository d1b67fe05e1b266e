// File: board/example_test.go
package board_test

import (
	"fmt"

	"github.com/katalvlaran/knightour/board"
)

////////////////////////////////////////////////////////////////////////////////
// Example: sentinel padding
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates that every knight destination computed from a
// logical cell is addressable without a bounds check: moves leaving the
// board land in the sentinel ring and read as Blocked.
//
// Complexity: O(8) per probe.
func ExampleNew() {
	b, _ := board.New(3, 3, nil)

	// Corner (0,0) in logical space.
	p := b.Padded(board.Coord{X: 0, Y: 0})

	legal := 0
	for _, m := range board.KnightMoves {
		if b.IsEmpty(p.X+m.DX, p.Y+m.DY) {
			legal++
		}
	}
	fmt.Println("legal moves from the corner:", legal)

	// Output:
	// legal moves from the corner: 2
}

////////////////////////////////////////////////////////////////////////////////
// Example: Connects
////////////////////////////////////////////////////////////////////////////////

// ExampleConnects demonstrates the closure test used for closed tours:
// last and first cell must be one knight move apart.
func ExampleConnects() {
	first := board.Coord{X: 0, Y: 0}
	last := board.Coord{X: 1, Y: 2}

	fmt.Println("closed:", board.Connects(last, first))

	// Output:
	// closed: true
}
