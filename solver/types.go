// Package solver defines configuration, result types and sentinel errors
// for the knight's-tour search engines.
package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
)

// Configuration sentinels. All of them are detected before a single
// search step executes; a failed validation never leaves a partially
// searched board behind.
var (
	// ErrBadDimensions indicates a non-positive board width or height.
	ErrBadDimensions = errors.New("solver: width and height must be positive")

	// ErrStartOutOfRange indicates a start cell outside the logical board.
	ErrStartOutOfRange = errors.New("solver: start cell out of range")

	// ErrStartBlocked indicates a start cell placed on an obstacle.
	ErrStartBlocked = errors.New("solver: start cell is blocked")

	// ErrOddClosedBoard indicates a closed tour requested on an odd-area
	// board. A closed tour has as many moves as cells and the knight
	// alternates square colors, so an odd cell count is provably
	// infeasible; this is rejected up front instead of burning an
	// exhaustive search.
	ErrOddClosedBoard = errors.New("solver: closed tour impossible on odd-area board")

	// ErrSymmetryParity indicates a symmetry mode whose mirrored dimension
	// is odd (horizontal needs even width, vertical even height, point both).
	ErrSymmetryParity = errors.New("solver: symmetry requires even dimensions along mirrored axes")

	// ErrOddFreeArea indicates a symmetric search on a board whose free
	// (non-obstacle) cell count is odd; two equal half-paths cannot cover it.
	ErrOddFreeArea = errors.New("solver: symmetric tour requires an even number of free cells")

	// ErrSelfMirrorStart indicates a start cell that is its own mirror
	// under the requested symmetry; it cannot seed two distinct half-paths.
	ErrSelfMirrorStart = errors.New("solver: start cell is its own mirror")

	// ErrMirrorStartBlocked indicates that the mirror of the start cell is
	// an obstacle; the mirrored half-path has nowhere to begin.
	ErrMirrorStartBlocked = errors.New("solver: mirror of start cell is blocked")
)

// Search sentinels.
var (
	// ErrNoTour indicates the search space was fully exhausted without
	// finding a tour — a proven negative result.
	ErrNoTour = errors.New("solver: no tour exists under the given constraints")

	// ErrTrialLimit indicates the move-examination budget was reached
	// before finding a tour or proving there is none — an inconclusive
	// result, deliberately distinct from ErrNoTour so callers never
	// mistake "gave up" for "proved impossible".
	ErrTrialLimit = errors.New("solver: trial limit reached before a conclusive result")

	// ErrInvalidPath is wrapped by ValidatePath when a replayed path
	// violates a tour invariant.
	ErrInvalidPath = errors.New("solver: path violates tour invariants")
)

// Symmetry selects the geometric constraint of the symmetric search.
type Symmetry int

const (
	// SymNone runs the regular (asymmetric) search.
	SymNone Symmetry = iota
	// SymHorizontal mirrors across the vertical center axis.
	SymHorizontal
	// SymVertical mirrors across the horizontal center axis.
	SymVertical
	// SymPoint rotates 180° around the board center.
	SymPoint
)

// String returns the symmetry name used in CLI output and rendered metadata.
func (s Symmetry) String() string {
	switch s {
	case SymNone:
		return "none"
	case SymHorizontal:
		return "horizontal"
	case SymVertical:
		return "vertical"
	case SymPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Options configures one search run. It is passed by value and never
// mutated, so concurrent runs with separate Options are independent —
// every run builds its own Board, frame stack and Statistics.
//
// Width, Height – logical board size (must be positive).
// StartX, StartY – start cell, logical 0-based coordinates; the default
// is the (0,0) top-left corner.
// Closed – require the last cell to be one knight move from the first.
// Symmetry – SymNone, or one of the mirrored searches (always closed).
// Heuristic – move-ordering strategy, fixed for the whole run.
// Obstacles – extra blocked cells inside the logical area. An odd
// obstacle count is accepted (the search then simply runs to a definite
// outcome) though a checkerboard-color argument makes closed tours on
// such boards unlikely.
// TrialLimit – optional budget of move examinations; 0 means unlimited.
type Options struct {
	Width, Height  int
	StartX, StartY int
	Closed         bool
	Symmetry       Symmetry
	Heuristic      order.Heuristic
	Obstacles      []board.Coord
	TrialLimit     uint64
}

// DefaultOptions returns an Options for the given board size with the
// documented defaults: corner start (0,0), open tour, no symmetry, plain
// ordering, no obstacles, no trial limit.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		StartX:     0,
		StartY:     0,
		Closed:     false,
		Symmetry:   SymNone,
		Heuristic:  order.Plain,
		Obstacles:  nil,
		TrialLimit: 0,
	}
}

// Statistics counts the work of exactly one search run. The counters are
// owned and mutated by the engine alone and returned by value; they are
// reset at the start of every run.
type Statistics struct {
	// Trials is the total number of move examinations, including the
	// onward-degree probes of the Warnsdorff strategy.
	Trials uint64
	// Moves is the number of cell placements (frames pushed).
	Moves uint64
	// Backtracks is the number of frames popped after exhausting their
	// candidates.
	Backtracks uint64
	// Duration is the wall-clock time of the search loop.
	Duration time.Duration
}

// Result holds the outcome of a successful search: the tour in logical
// coordinates ordered by move index, whether it is closed, and the run's
// Statistics. On a failed search Solve still returns the Statistics (the
// cost of a negative answer is part of the answer).
type Result struct {
	Path   []board.Coord
	Closed bool
	Stats  Statistics
}
