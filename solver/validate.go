// Package solver - staged configuration validation shared by Solve.
//
// Design principles (matching the rest of the family):
//   - Deterministic, side-effect free checks; no partial search on error.
//   - Strict sentinels from types.go; no fmt.Errorf where a sentinel suffices.
//   - Cheap checks first, board-dependent checks after construction.
package solver

import (
	"github.com/katalvlaran/knightour/board"
)

// validateOptions verifies everything that does not require a built
// board: dimensions, start range, closed-tour parity and the symmetry
// preconditions.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Stage 1: shape.
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrBadDimensions
	}
	if opts.StartX < 0 || opts.StartX >= opts.Width ||
		opts.StartY < 0 || opts.StartY >= opts.Height {
		return ErrStartOutOfRange
	}

	// Stage 2: closed-tour parity. Odd area ⇒ both dimensions odd ⇒ the
	// knight cannot return to its start color after an odd move count.
	if opts.Closed && (opts.Width*opts.Height)%2 == 1 {
		return ErrOddClosedBoard
	}

	// Stage 3: symmetry parity along the mirrored axes.
	switch opts.Symmetry {
	case SymNone:
		// Nothing to check.
	case SymHorizontal:
		if opts.Width%2 != 0 {
			return ErrSymmetryParity
		}
	case SymVertical:
		if opts.Height%2 != 0 {
			return ErrSymmetryParity
		}
	case SymPoint:
		if opts.Width%2 != 0 || opts.Height%2 != 0 {
			return ErrSymmetryParity
		}
	default:
		return ErrSymmetryParity
	}

	// Stage 4: the start must have a distinct mirror. With the parity
	// checks above a fixed point cannot occur, but the precondition is
	// part of the contract and stays verified on its own.
	if opts.Symmetry != SymNone {
		m := mirrorLogical(opts, board.Coord{X: opts.StartX, Y: opts.StartY})
		if m.X == opts.StartX && m.Y == opts.StartY {
			return ErrSelfMirrorStart
		}
	}

	return nil
}

// validateBoard verifies the board-dependent preconditions after
// construction: the start cell (and, for symmetric runs, its mirror)
// must be free, and a symmetric run needs an even free-cell count.
//
// Complexity: O(1).
func validateBoard(opts Options, b *board.Board) error {
	start := b.Padded(board.Coord{X: opts.StartX, Y: opts.StartY})
	if !b.IsEmpty(start.X, start.Y) {
		return ErrStartBlocked
	}
	if opts.Symmetry == SymNone {
		return nil
	}
	if b.FreeCells()%2 != 0 {
		return ErrOddFreeArea
	}
	m := mirrorFunc(opts.Symmetry, b)(start)
	if !b.IsEmpty(m.X, m.Y) {
		return ErrMirrorStartBlocked
	}

	return nil
}

// mirrorLogical applies the symmetry transform in logical coordinates,
// used by the pre-board validation stage.
//
// Complexity: O(1).
func mirrorLogical(opts Options, c board.Coord) board.Coord {
	switch opts.Symmetry {
	case SymHorizontal:
		return board.Coord{X: opts.Width - 1 - c.X, Y: c.Y}
	case SymVertical:
		return board.Coord{X: c.X, Y: opts.Height - 1 - c.Y}
	case SymPoint:
		return board.Coord{X: opts.Width - 1 - c.X, Y: opts.Height - 1 - c.Y}
	default:
		return c
	}
}

// mirrorFunc returns the symmetry transform in padded coordinates. The
// padded formulas fold the logical reflection and the sentinel offset
// into one expression: width−1−x in logical space is width+3−x in
// padded space (and likewise for y).
//
// Complexity: O(1) per application.
func mirrorFunc(s Symmetry, b *board.Board) func(board.Coord) board.Coord {
	switch s {
	case SymHorizontal:
		return func(c board.Coord) board.Coord {
			return board.Coord{X: b.Width + 3 - c.X, Y: c.Y}
		}
	case SymVertical:
		return func(c board.Coord) board.Coord {
			return board.Coord{X: c.X, Y: b.Height + 3 - c.Y}
		}
	case SymPoint:
		return func(c board.Coord) board.Coord {
			return board.Coord{X: b.Width + 3 - c.X, Y: b.Height + 3 - c.Y}
		}
	default:
		return func(c board.Coord) board.Coord { return c }
	}
}
