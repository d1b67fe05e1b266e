// Package solver_test exercises the symmetric engine.
// Focus:
//  1. Point-symmetric tours are found, closed and mirror-consistent.
//  2. The mirror relation holds cell by cell, not just via ValidatePath.
//  3. Infeasible symmetric boards terminate with ErrNoTour.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
	"github.com/katalvlaran/knightour/solver"
)

func TestSolve_PointSymmetric6x6(t *testing.T) {
	opts := solver.DefaultOptions(6, 6)
	opts.Heuristic = order.Warnsdorff
	opts.Symmetry = solver.SymPoint

	res, err := solver.Solve(opts)
	require.NoError(t, err)
	require.Len(t, res.Path, 36)
	require.True(t, res.Closed, "symmetric tours are closed by construction")
	require.NoError(t, solver.ValidatePath(res, opts))

	// Mirror relation, spelled out: the cell visited half a tour later is
	// the 180° image of the current one.
	for i, c := range res.Path {
		want := board.Coord{X: 5 - c.X, Y: 5 - c.Y}
		require.Equal(t, want, res.Path[(i+18)%36], "move %d", i)
	}
}

// Closed knight's tours have no axial mirror symmetry on a 4×4 board (no
// closed tour exists there at all), so the horizontal search must prove
// the negative and restore nothing but Empty cells behind itself.
func TestSolve_HorizontalSymmetric4x4NoTour(t *testing.T) {
	opts := solver.DefaultOptions(4, 4)
	opts.Symmetry = solver.SymHorizontal

	res, err := solver.Solve(opts)
	require.ErrorIs(t, err, solver.ErrNoTour)
	require.NotZero(t, res.Stats.Trials)
}

// On 2×2 the knight has no legal move anywhere; the symmetric search
// dies at the start frame.
func TestSolve_PointSymmetric2x2NoTour(t *testing.T) {
	opts := solver.DefaultOptions(2, 2)
	opts.Symmetry = solver.SymPoint

	_, err := solver.Solve(opts)
	require.ErrorIs(t, err, solver.ErrNoTour)
}

// Symmetric runs with obstacles: a candidate whose mirror is an obstacle
// must be skipped, never overwritten. The pair of obstacles below is
// itself point-symmetric, which keeps a symmetric tour at least
// conceivable; either outcome must be definite and, on success, valid.
func TestSolve_PointSymmetricWithObstacles(t *testing.T) {
	opts := solver.DefaultOptions(6, 6)
	opts.Heuristic = order.Warnsdorff
	opts.Symmetry = solver.SymPoint
	opts.Obstacles = []board.Coord{{X: 1, Y: 1}, {X: 4, Y: 4}}

	res, err := solver.Solve(opts)
	if err != nil {
		require.ErrorIs(t, err, solver.ErrNoTour)
		return
	}
	require.Len(t, res.Path, 34)
	require.NoError(t, solver.ValidatePath(res, opts))
}

func TestSolve_SymmetricDeterministic(t *testing.T) {
	opts := solver.DefaultOptions(6, 6)
	opts.Heuristic = order.Warnsdorff
	opts.Symmetry = solver.SymPoint

	first, err := solver.Solve(opts)
	require.NoError(t, err)
	second, err := solver.Solve(opts)
	require.NoError(t, err)
	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Stats.Trials, second.Stats.Trials)
	require.Equal(t, first.Stats.Moves, second.Stats.Moves)
	require.Equal(t, first.Stats.Backtracks, second.Stats.Backtracks)
}
