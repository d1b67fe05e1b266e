// Package board defines core types and sentinel errors for the
// sentinel-padded knight's-tour board of github.com/katalvlaran/knightour.
package board

import (
	"errors"
)

// Sentinel errors for board construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("board: width and height must be positive")
	// ErrObstacleOutOfRange indicates an obstacle outside the logical board area.
	ErrObstacleOutOfRange = errors.New("board: obstacle outside logical board")
	// ErrObstacleOnBlocked indicates an obstacle listed twice.
	ErrObstacleOnBlocked = errors.New("board: duplicate obstacle cell")
)

// Margin is the depth of the sentinel ring on each side of the logical
// area. Two cells suffice: no knight offset exceeds 2 in either axis, so
// every destination reachable from a logical cell lies inside the padded
// grid and reads as Blocked when it is off-board.
const Margin = 2

// Cell state encoding inside the padded grid. Non-negative values are
// move indices (a visited cell stores the index at which the knight
// entered it); the negative constants below are the three special states.
// The numeric values match the original solver family so that printed
// debug boards remain comparable across implementations.
const (
	// Empty marks an unvisited, enterable cell.
	Empty = -1
	// Blocked marks a border sentinel or a caller-supplied obstacle.
	Blocked = -2
	// MirrorBlocked marks a cell reserved for the mirrored half of a
	// symmetric tour: unavailable like Blocked, but released on backtrack
	// and never carrying a move index until path reconstruction.
	MirrorBlocked = -3
)

// Coord is a cell position. Throughout the solver coordinates are in
// padded-grid space; the Logical/Padded helpers on Board convert to and
// from the caller-facing 0-based logical space.
type Coord struct {
	X, Y int
}

// Offset is a knight-move displacement.
type Offset struct {
	DX, DY int
}

// KnightMoves is the canonical ordered table of the 8 knight offsets,
// clockwise starting from (+2,+1). This fixed enumeration is the basis
// for plain ordering and the tie-break order for every other strategy;
// no code may enumerate knight moves in any other order.
var KnightMoves = [8]Offset{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// Board is a rectangular grid of logical size Width×Height embedded in a
// padded grid of size (Width+2·Margin)×(Height+2·Margin) whose ring is
// permanently Blocked. It is a plain data structure: reads, writes and
// state queries only, no search behavior. One Board belongs to exactly
// one search run; it is not safe for concurrent use.
type Board struct {
	Width, Height int

	// cells is the padded grid in row-major order, (Width+4)·(Height+4)
	// entries. Kept flat to keep Mark/Unmark a single index computation.
	cells []int

	// stride is the padded row width, Width+2·Margin.
	stride int

	// free is the number of Empty cells right after construction: the
	// number of cells a full tour must visit.
	free int
}
