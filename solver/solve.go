// Package solver - unified entry point for the knight's-tour engines.
//
// Solve validates the configuration, builds the board and the ordering
// strategy, and routes to the regular or symmetric engine.
//
// Design principles:
//   - Deterministic: a fixed Options value always yields the identical
//     tour and identical Statistics; no randomness anywhere.
//   - Strict sentinels: configuration errors from types.go (plus the
//     board constructor's own sentinels, forwarded as-is), all detected
//     before the first search step.
//   - Hot-path discipline: the engines allocate frames and candidate
//     lists only; the board is a flat slice with O(1) unchecked access.
package solver

import (
	"time"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
)

// Solve runs one knight's-tour search described by opts.
//
// Contracts:
//   - opts is read-only; every run owns its Board, stack and Statistics,
//     so independent runs may execute concurrently.
//   - On success, Result.Path visits every free cell exactly once in
//     knight moves, Result.Closed reports loop closure (symmetric tours
//     are closed by construction).
//   - On ErrNoTour / ErrTrialLimit the Result still carries Statistics.
//
// Errors: configuration sentinels (ErrBadDimensions, ErrStartOutOfRange,
// ErrStartBlocked, ErrOddClosedBoard, ErrSymmetryParity, ErrOddFreeArea,
// ErrSelfMirrorStart, ErrMirrorStartBlocked, order.ErrUnknownHeuristic,
// board obstacle sentinels) and search sentinels (ErrNoTour, ErrTrialLimit).
//
// Complexity: exponential in free cells in the worst case (exhaustive
// search); per step O(8) or O(8+8·candidates) examinations depending on
// the strategy. Memory: O(free cells) for the frame stack.
func Solve(opts Options) (Result, error) {
	var res Result

	// Stage 1 - board-independent validation.
	if err := validateOptions(opts); err != nil {
		return res, err
	}

	// Stage 2 - strategy selection (rejects unknown heuristics).
	strategy, err := order.New(opts.Heuristic)
	if err != nil {
		return res, err
	}

	// Stage 3 - board construction (validates obstacles) and the
	// board-dependent checks.
	b, err := board.New(opts.Width, opts.Height, opts.Obstacles)
	if err != nil {
		return res, err
	}
	if err = validateBoard(opts, b); err != nil {
		return res, err
	}

	// Stage 4 - run the engine.
	e := &engine{
		b:        b,
		strategy: strategy,
		start:    b.Padded(board.Coord{X: opts.StartX, Y: opts.StartY}),
		target:   b.FreeCells(),
		closed:   opts.Closed,
		limit:    opts.TrialLimit,
	}
	started := time.Now()
	if opts.Symmetry != SymNone {
		err = e.runSymmetric(mirrorFunc(opts.Symmetry, b))
	} else {
		err = e.runRegular()
	}
	e.stats.Duration = time.Since(started)

	// Statistics travel with the result even on a negative outcome.
	res.Stats = e.stats
	if err != nil {
		return res, err
	}

	res.Path = extractPath(b)
	res.Closed = opts.Closed || opts.Symmetry != SymNone

	return res, nil
}

// extractPath reads the finished board into an ordered logical-coordinate
// path. The board state itself is the search result; the path is just a
// scan ordered by the stored move indices.
//
// Complexity: O(W×H) time, O(free cells) memory.
func extractPath(b *board.Board) []board.Coord {
	var (
		path = make([]board.Coord, b.FreeCells())
		x, y int
		v    int
	)
	for y = board.Margin; y < b.Height+board.Margin; y++ {
		for x = board.Margin; x < b.Width+board.Margin; x++ {
			v = b.At(x, y)
			if v >= 0 && v < len(path) {
				path[v] = b.Logical(board.Coord{X: x, Y: y})
			}
		}
	}

	return path
}
