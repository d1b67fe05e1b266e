// Package solver_test exercises ValidatePath against hand-broken tours.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
	"github.com/katalvlaran/knightour/solver"
)

// validTour returns a solved 5×5 open tour plus its Options; the
// sub-tests below corrupt copies of it one invariant at a time.
func validTour(t *testing.T) (solver.Result, solver.Options) {
	t.Helper()
	opts := solver.DefaultOptions(5, 5)
	res, err := solver.Solve(opts)
	require.NoError(t, err)

	return res, opts
}

func clonePath(p []board.Coord) []board.Coord {
	cp := make([]board.Coord, len(p))
	copy(cp, p)

	return cp
}

func TestValidatePath_AcceptsSolverOutput(t *testing.T) {
	res, opts := validTour(t)
	require.NoError(t, solver.ValidatePath(res, opts))
}

func TestValidatePath_WrongLength(t *testing.T) {
	res, opts := validTour(t)
	res.Path = res.Path[:24]

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}

func TestValidatePath_OutOfRangeCell(t *testing.T) {
	res, opts := validTour(t)
	res.Path = clonePath(res.Path)
	res.Path[3] = board.Coord{X: 7, Y: 0}

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}

func TestValidatePath_RepeatedCell(t *testing.T) {
	res, opts := validTour(t)
	res.Path = clonePath(res.Path)
	res.Path[10] = res.Path[2]

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}

func TestValidatePath_ObstacleCell(t *testing.T) {
	res, opts := validTour(t)
	// Declare the tour's 5th cell an obstacle after the fact; trimming the
	// tail keeps the length consistent with the shrunken free area, so the
	// obstacle check is the one that fires.
	opts.Obstacles = []board.Coord{res.Path[5]}
	res.Path = res.Path[:24]

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}

func TestValidatePath_BrokenContinuity(t *testing.T) {
	res, opts := validTour(t)
	res.Path = clonePath(res.Path)
	// Swap cells at indices of opposite parity: a knight move always
	// flips square color, so the adjacency into index 7 cannot survive.
	res.Path[7], res.Path[10] = res.Path[10], res.Path[7]

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}

func TestValidatePath_FalseClosureClaim(t *testing.T) {
	res, opts := validTour(t)
	// A 5×5 open tour from a corner cannot close (odd cell count).
	res.Closed = true

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}

func TestValidatePath_MirrorMismatch(t *testing.T) {
	opts := solver.DefaultOptions(6, 6)
	opts.Symmetry = solver.SymPoint
	opts.Heuristic = order.Warnsdorff
	res, err := solver.Solve(opts)
	require.NoError(t, err)

	// The tour is a perfectly good closed tour, so coverage, continuity
	// and closure all pass; replaying it under the wrong symmetry claim
	// must fail the mirror relation (closed tours have no axial mirror
	// symmetry, so this cannot pass by accident).
	opts.Symmetry = solver.SymHorizontal

	require.ErrorIs(t, solver.ValidatePath(res, opts), solver.ErrInvalidPath)
}
