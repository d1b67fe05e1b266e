// Package solver - regular (asymmetric) iterative DFS engine.
//
// The engine replaces native recursion with an explicit stack of frames,
// the standard strategy for boards whose cell count would exceed call-
// depth limits. Frames are pushed on placement and popped on exhaustion;
// nothing references a frame by index, so the stack behaves like an
// arena that grows and shrinks at the top only.
package solver

import (
	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
)

// frame is one ply of the search: the cell the knight occupies, the move
// index assigned on entry, the candidate list fixed at creation time and
// the cursor over the not-yet-tried candidates. The candidate list is
// never recomputed: siblings restore the board to the creation-time
// snapshot before the next candidate is tried.
type frame struct {
	pos     board.Coord
	moveNum int
	moves   []board.Coord
	next    int
}

// engine holds all state of one search run. A dedicated struct (instead
// of closures over Solve locals) keeps dependencies explicit and the
// hot-path state predictable.
type engine struct {
	b        *board.Board
	strategy order.Strategy
	start    board.Coord // padded
	target   int         // free cells a full tour must cover
	closed   bool
	limit    uint64 // 0 = unlimited
	stats    Statistics
}

// consult asks the strategy for the candidate list of (x,y) and records
// the examination cost. This is the only call site of the strategy per
// frame; the engine never inspects raw move tables itself.
func (e *engine) consult(x, y int) []board.Coord {
	moves, examined := e.strategy.Moves(e.b, x, y)
	e.stats.Trials += uint64(examined)

	return moves
}

// exhausted reports whether the optional trial budget is spent. Checked
// once per loop iteration — a cooperative budget, not preemption.
func (e *engine) exhausted() bool {
	return e.limit > 0 && e.stats.Trials >= e.limit
}

// runRegular drives the iterative DFS until a full tour is placed or the
// space is exhausted.
//
// Terminals:
//   - success: the top frame carries move index target−1 and, in closed
//     mode, connects back to the start by one knight move;
//   - ErrNoTour: the stack emptied after backtracking out of the start;
//   - ErrTrialLimit: the cooperative budget ran out first.
//
// The board is left exactly as the terminal found it: a success leaves
// the complete numbering for extractPath; a failure leaves all cells
// Empty again (every placement was unwound).
func (e *engine) runRegular() error {
	// Init: place the start as move 0 and open its frame.
	e.b.Mark(e.start.X, e.start.Y, 0)
	e.stats.Moves++
	stack := make([]frame, 0, e.target)
	stack = append(stack, frame{pos: e.start, moveNum: 0, moves: e.consult(e.start.X, e.start.Y)})

	var (
		top *frame
		nc  board.Coord
		num int
	)
	for len(stack) > 0 {
		if e.exhausted() {
			return ErrTrialLimit
		}
		top = &stack[len(stack)-1]

		// Success check: the last free cell was just entered.
		if top.moveNum+1 == e.target {
			if !e.closed || board.Connects(top.pos, e.start) {
				return nil
			}
			// Closed mode and no closing move: fall through, the frame
			// has no viable candidates and will backtrack.
		}

		// Backtrack: candidates exhausted, revert and pop.
		if top.next >= len(top.moves) {
			e.b.Unmark(top.pos.X, top.pos.Y)
			stack = stack[:len(stack)-1]
			e.stats.Backtracks++
			continue
		}

		// Apply the next untried candidate.
		nc = top.moves[top.next]
		top.next++
		num = top.moveNum + 1
		e.b.Mark(nc.X, nc.Y, num)
		e.stats.Moves++
		stack = append(stack, frame{pos: nc, moveNum: num, moves: e.consult(nc.X, nc.Y)})
	}

	return ErrNoTour
}
