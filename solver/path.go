// Package solver - tour replay validation.
package solver

import (
	"fmt"

	"github.com/katalvlaran/knightour/board"
)

// ValidatePath replays res.Path against opts and verifies every tour
// invariant: full coverage of the free cells with no repeats, knight-move
// continuity, closure when the tour claims to be closed, and the mirror
// relation for symmetric runs. All reported errors wrap ErrInvalidPath.
//
// It is exported because callers composing their own pipelines (render,
// persistence, fixtures) want the same replay check the tests use.
//
// Complexity: O(n) time and memory for n path cells.
func ValidatePath(res Result, opts Options) error {
	var (
		free = opts.Width*opts.Height - len(opts.Obstacles)
		n    = len(res.Path)
	)
	if n != free {
		return fmt.Errorf("%w: path covers %d cells, board has %d free", ErrInvalidPath, n, free)
	}

	// Coverage: in-range, off-obstacle, no repeats.
	blocked := make(map[board.Coord]struct{}, len(opts.Obstacles))
	var c board.Coord
	for _, c = range opts.Obstacles {
		blocked[c] = struct{}{}
	}
	seen := make(map[board.Coord]struct{}, n)
	var (
		i  int
		ok bool
	)
	for i, c = range res.Path {
		if c.X < 0 || c.X >= opts.Width || c.Y < 0 || c.Y >= opts.Height {
			return fmt.Errorf("%w: cell %d (%d,%d) outside the board", ErrInvalidPath, i, c.X, c.Y)
		}
		if _, ok = blocked[c]; ok {
			return fmt.Errorf("%w: cell %d (%d,%d) is an obstacle", ErrInvalidPath, i, c.X, c.Y)
		}
		if _, ok = seen[c]; ok {
			return fmt.Errorf("%w: cell %d (%d,%d) visited twice", ErrInvalidPath, i, c.X, c.Y)
		}
		seen[c] = struct{}{}
	}

	// Continuity: each consecutive pair is one knight move.
	for i = 1; i < n; i++ {
		if !board.Connects(res.Path[i-1], res.Path[i]) {
			return fmt.Errorf("%w: moves %d→%d are not a knight move", ErrInvalidPath, i-1, i)
		}
	}

	// Closure.
	if res.Closed && n > 1 && !board.Connects(res.Path[n-1], res.Path[0]) {
		return fmt.Errorf("%w: tour claims closure but last→first is not a knight move", ErrInvalidPath)
	}

	// Symmetry: cell(i)'s mirror is cell(i+n/2 mod n).
	if opts.Symmetry != SymNone {
		if n%2 != 0 {
			return fmt.Errorf("%w: symmetric tour has odd length %d", ErrInvalidPath, n)
		}
		half := n / 2
		for i = 0; i < n; i++ {
			m := mirrorLogical(opts, res.Path[i])
			if res.Path[(i+half)%n] != m {
				return fmt.Errorf("%w: cell %d mirror mismatch", ErrInvalidPath, i)
			}
		}
	}

	return nil
}
