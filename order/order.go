// Package order implements the three move-ordering strategies behind the
// Strategy interface: plain (canonical order), centrifugal (descending
// distance from the board center) and Warnsdorff (ascending onward
// degree). Ordering keys differ; the filter is always the same — only
// currently Empty cells are candidates — and ties always preserve the
// canonical board.KnightMoves order.
package order

import (
	"github.com/katalvlaran/knightour/board"
)

// moveFanout is the number of examinations one sweep of the knight move
// table costs. Recorded per strategy call so that statistics stay
// comparable with the other solvers of this family.
const moveFanout = len(board.KnightMoves)

//----------------------------------------------------------------------------//
// Plain
//----------------------------------------------------------------------------//

type plainStrategy struct{}

// Moves returns the Empty destinations in canonical order.
// Cost: one table sweep (8 examinations).
// Complexity: O(8), one slice allocation for the frame's candidate list.
func (plainStrategy) Moves(b *board.Board, x, y int) ([]board.Coord, int) {
	dst := make([]board.Coord, 0, moveFanout)
	var m board.Offset
	for _, m = range board.KnightMoves {
		if b.IsEmpty(x+m.DX, y+m.DY) {
			dst = append(dst, board.Coord{X: x + m.DX, Y: y + m.DY})
		}
	}

	return dst, moveFanout
}

//----------------------------------------------------------------------------//
// Centrifugal
//----------------------------------------------------------------------------//

type centrifugalStrategy struct{}

// Moves orders the Empty destinations by decreasing squared Euclidean
// distance from the board center (edges first), ties in canonical order.
// The squared metric needs no square root and is behaviorally identical
// for ordering purposes.
// Cost: one table sweep (8 examinations).
// Complexity: O(8 + 8²) worst case for the stable insertion sort.
func (centrifugalStrategy) Moves(b *board.Board, x, y int) ([]board.Coord, int) {
	// Board center in padded space; fractional for even dimensions.
	var (
		cx = float64(b.Width-1)/2 + board.Margin
		cy = float64(b.Height-1)/2 + board.Margin

		buf  [moveFanout]board.Coord
		keys [moveFanout]float64
		n    int
		m    board.Offset
	)
	for _, m = range board.KnightMoves {
		nx, ny := x+m.DX, y+m.DY
		if !b.IsEmpty(nx, ny) {
			continue
		}
		dx, dy := float64(nx)-cx, float64(ny)-cy
		buf[n] = board.Coord{X: nx, Y: ny}
		// Negated so that the shared ascending sort yields farthest-first.
		keys[n] = -(dx*dx + dy*dy)
		n++
	}
	sortStable(buf[:n], keys[:n])

	dst := make([]board.Coord, n)
	copy(dst, buf[:n])

	return dst, moveFanout
}

//----------------------------------------------------------------------------//
// Warnsdorff
//----------------------------------------------------------------------------//

type warnsdorffStrategy struct{}

// Moves orders the Empty destinations by ascending onward degree — the
// number of Empty knight destinations each candidate itself has — ties
// in canonical order. The degree is a local O(8) count per candidate;
// no recursion, no allocation beyond the frame's candidate list.
// Cost: one table sweep plus one sweep per candidate (8 + 8·|candidates|).
func (warnsdorffStrategy) Moves(b *board.Board, x, y int) ([]board.Coord, int) {
	var (
		buf  [moveFanout]board.Coord
		keys [moveFanout]float64
		n    int
		m    board.Offset
	)
	for _, m = range board.KnightMoves {
		nx, ny := x+m.DX, y+m.DY
		if !b.IsEmpty(nx, ny) {
			continue
		}
		buf[n] = board.Coord{X: nx, Y: ny}
		keys[n] = float64(onwardDegree(b, nx, ny))
		n++
	}
	sortStable(buf[:n], keys[:n])

	dst := make([]board.Coord, n)
	copy(dst, buf[:n])

	return dst, moveFanout + n*moveFanout
}

// onwardDegree counts the Empty knight destinations of padded cell (x,y).
// Complexity: O(8).
func onwardDegree(b *board.Board, x, y int) int {
	var (
		count int
		m     board.Offset
	)
	for _, m = range board.KnightMoves {
		if b.IsEmpty(x+m.DX, y+m.DY) {
			count++
		}
	}

	return count
}

// sortStable orders cells by ascending key with a stable insertion sort.
// Stability is load-bearing: equal keys must keep the relative canonical
// order the candidates were collected in. At most 8 elements, so the
// quadratic worst case is a handful of comparisons and swaps.
func sortStable(cells []board.Coord, keys []float64) {
	var (
		i, j int
		c    board.Coord
		k    float64
	)
	for i = 1; i < len(cells); i++ {
		c, k = cells[i], keys[i]
		for j = i; j > 0 && keys[j-1] > k; j-- {
			cells[j], keys[j] = cells[j-1], keys[j-1]
		}
		cells[j], keys[j] = c, k
	}
}
