// Package solver - symmetric search engine and path reconstruction.
//
// The symmetric algorithm tracks only the primary half-path A. Whenever
// A commits a cell, the cell's mirror under the requested transform is
// immediately reserved as MirrorBlocked — unavailable to A and to the
// strategies' degree probes, but carrying no move index yet. Once A
// covers half the free cells and its head connects by one knight move to
// the mirror of the start cell, the second half-path B is synthesized by
// mirroring A move for move; the splice A+B is a closed tour by
// construction. On backtrack the mirror reservation is released in step
// with A, so the board never drifts from the half-path it reflects.
package solver

import (
	"github.com/katalvlaran/knightour/board"
)

// runSymmetric drives the DFS over half-path A with mirror blocking.
//
// Terminals mirror runRegular: success once A spans target/2 cells and
// connects to mirror(start); ErrNoTour when the stack empties;
// ErrTrialLimit when the cooperative budget runs out.
//
// Candidate filtering is stricter than in the regular engine: a
// candidate is viable only if its mirror is also Empty. The strategies
// cannot know that (they see one cell at a time), so the engine skips
// such candidates here — the one asymmetry obstacles introduce, since a
// reserved or obstructed mirror would otherwise be overwritten.
func (e *engine) runSymmetric(mirror func(board.Coord) board.Coord) error {
	half := e.target / 2
	startB := mirror(e.start)

	// Init: place the start as move 0 and reserve its mirror.
	e.b.Mark(e.start.X, e.start.Y, 0)
	e.b.MarkMirrorBlocked(startB.X, startB.Y)
	e.stats.Moves++
	stack := make([]frame, 0, half)
	stack = append(stack, frame{pos: e.start, moveNum: 0, moves: e.consult(e.start.X, e.start.Y)})

	var (
		top    *frame
		nc, mc board.Coord
		num    int
	)
	for len(stack) > 0 {
		if e.exhausted() {
			return ErrTrialLimit
		}
		top = &stack[len(stack)-1]

		// Half-path complete: splice test against the mirrored start.
		if top.moveNum+1 == half && board.Connects(top.pos, startB) {
			e.reconstruct(mirror, half)
			return nil
		}

		if top.next < len(top.moves) {
			nc = top.moves[top.next]
			top.next++
			mc = mirror(nc)
			// The mirror must be free too: an obstacle there would make
			// the reflected half-path impassable through this cell.
			if !e.b.IsEmpty(nc.X, nc.Y) || !e.b.IsEmpty(mc.X, mc.Y) {
				continue
			}
			num = top.moveNum + 1
			e.b.Mark(nc.X, nc.Y, num)
			e.b.MarkMirrorBlocked(mc.X, mc.Y)
			e.stats.Moves++
			stack = append(stack, frame{pos: nc, moveNum: num, moves: e.consult(nc.X, nc.Y)})
			continue
		}

		// Backtrack: release the cell and its mirror together. The start
		// frame keeps its marks until the loop exits (move 0 was placed
		// during init, not by a parent frame).
		if top.moveNum > 0 {
			mc = mirror(top.pos)
			e.b.Unmark(top.pos.X, top.pos.Y)
			e.b.Unmark(mc.X, mc.Y)
		}
		stack = stack[:len(stack)-1]
		e.stats.Backtracks++
	}

	// Proven negative: revert the init marks so the board ends all-Empty.
	e.b.Unmark(e.start.X, e.start.Y)
	e.b.Unmark(startB.X, startB.Y)

	return ErrNoTour
}

// reconstruct turns the finished half-path A into a full tour: A keeps
// move indices 0..half−1, and for every i the mirror of A[i] becomes
// move half+i. Continuity and closure hold by construction — the splice
// edge was just verified, mirroring preserves knight adjacency, and the
// edge mirror(A[half−1])→A[0] is the mirror image of the splice edge.
//
// Complexity: O(W×H) scan + O(half) renumbering.
func (e *engine) reconstruct(mirror func(board.Coord) board.Coord, half int) {
	var (
		pathA = make([]board.Coord, half)
		x, y  int
		v     int
	)
	for y = board.Margin; y < e.b.Height+board.Margin; y++ {
		for x = board.Margin; x < e.b.Width+board.Margin; x++ {
			v = e.b.At(x, y)
			if v >= 0 && v < half {
				pathA[v] = board.Coord{X: x, Y: y}
			}
		}
	}
	var (
		i int
		c board.Coord
	)
	for i, c = range pathA {
		m := mirror(c)
		e.b.Mark(m.X, m.Y, half+i)
	}
}
