// Package solver_test validates the staged configuration checks.
// Focus:
//  1. Strict sentinels on malformed configurations.
//  2. Every configuration error fires before any search step (zero stats).
//  3. Odd obstacle cardinality is accepted, not rejected.
package solver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
	"github.com/katalvlaran/knightour/solver"
)

func TestSolve_ConfigSentinels(t *testing.T) {
	cases := []struct {
		name string
		opts solver.Options
		err  error
	}{
		{
			name: "ZeroWidth",
			opts: solver.Options{Width: 0, Height: 8},
			err:  solver.ErrBadDimensions,
		},
		{
			name: "NegativeHeight",
			opts: solver.Options{Width: 8, Height: -1},
			err:  solver.ErrBadDimensions,
		},
		{
			name: "StartBeyondWidth",
			opts: solver.Options{Width: 5, Height: 5, StartX: 5},
			err:  solver.ErrStartOutOfRange,
		},
		{
			name: "StartNegative",
			opts: solver.Options{Width: 5, Height: 5, StartY: -1},
			err:  solver.ErrStartOutOfRange,
		},
		{
			name: "ClosedOddArea7x7",
			opts: solver.Options{Width: 7, Height: 7, Closed: true},
			err:  solver.ErrOddClosedBoard,
		},
		{
			name: "HorizontalOddWidth",
			opts: solver.Options{Width: 5, Height: 6, Symmetry: solver.SymHorizontal},
			err:  solver.ErrSymmetryParity,
		},
		{
			name: "VerticalOddHeight",
			opts: solver.Options{Width: 6, Height: 5, Symmetry: solver.SymVertical},
			err:  solver.ErrSymmetryParity,
		},
		{
			name: "PointOddWidth",
			opts: solver.Options{Width: 5, Height: 6, Symmetry: solver.SymPoint},
			err:  solver.ErrSymmetryParity,
		},
		{
			name: "UnknownSymmetry",
			opts: solver.Options{Width: 6, Height: 6, Symmetry: solver.Symmetry(99)},
			err:  solver.ErrSymmetryParity,
		},
		{
			name: "UnknownHeuristic",
			opts: solver.Options{Width: 5, Height: 5, Heuristic: order.Heuristic(42)},
			err:  order.ErrUnknownHeuristic,
		},
		{
			name: "ObstacleOutOfRange",
			opts: solver.Options{Width: 5, Height: 5, Obstacles: []board.Coord{{X: 9, Y: 0}}},
			err:  board.ErrObstacleOutOfRange,
		},
		{
			name: "ObstacleDuplicate",
			opts: solver.Options{
				Width: 5, Height: 5,
				Obstacles: []board.Coord{{X: 1, Y: 1}, {X: 1, Y: 1}},
			},
			err: board.ErrObstacleOnBlocked,
		},
		{
			name: "StartOnObstacle",
			opts: solver.Options{Width: 5, Height: 5, Obstacles: []board.Coord{{X: 0, Y: 0}}},
			err:  solver.ErrStartBlocked,
		},
		{
			name: "PointMirrorStartBlocked",
			opts: solver.Options{
				Width: 6, Height: 6, Symmetry: solver.SymPoint,
				// Point mirror of (0,0) is (5,5); keep the free count even
				// with a second obstacle so only the mirror check can fire.
				Obstacles: []board.Coord{{X: 5, Y: 5}, {X: 2, Y: 2}},
			},
			err: solver.ErrMirrorStartBlocked,
		},
		{
			name: "PointOddFreeArea",
			opts: solver.Options{
				Width: 6, Height: 6, Symmetry: solver.SymPoint,
				Obstacles: []board.Coord{{X: 2, Y: 2}},
			},
			err: solver.ErrOddFreeArea,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.Solve(tc.opts)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Solve(%+v) error = %v; want %v", tc.opts, err, tc.err)
			}
			// Config errors fire before any search step.
			if res.Stats.Trials != 0 || res.Stats.Moves != 0 {
				t.Errorf("config error after search work: %+v", res.Stats)
			}
		})
	}
}

// TestSolve_OddObstacleCountAccepted asserts that odd obstacle
// cardinality is not a configuration error: the search runs and ends
// with a definite outcome.
func TestSolve_OddObstacleCountAccepted(t *testing.T) {
	opts := solver.DefaultOptions(4, 4)
	opts.Heuristic = order.Warnsdorff
	opts.Obstacles = []board.Coord{{X: 3, Y: 3}}

	res, err := solver.Solve(opts)
	switch {
	case err == nil:
		if verr := solver.ValidatePath(res, opts); verr != nil {
			t.Fatalf("returned tour invalid: %v", verr)
		}
	case errors.Is(err, solver.ErrNoTour):
		// Equally definite.
	default:
		t.Fatalf("want a definite outcome, got %v", err)
	}
	if res.Stats.Trials == 0 {
		t.Error("search ran but recorded no examinations")
	}
}
