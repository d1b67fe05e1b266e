// Package order defines the move-ordering contract and its selectable
// heuristics for the knightour search engines.
package order

import (
	"errors"

	"github.com/katalvlaran/knightour/board"
)

// ErrUnknownHeuristic indicates a Heuristic value outside the known set.
var ErrUnknownHeuristic = errors.New("order: unknown heuristic")

// Heuristic selects one of the interchangeable move-ordering strategies.
type Heuristic int

const (
	// Plain returns candidates in the canonical KnightMoves order.
	Plain Heuristic = iota
	// Centrifugal prefers candidates far from the board center (edges first).
	Centrifugal
	// Warnsdorff prefers candidates with the fewest onward moves (narrow path first).
	Warnsdorff
)

// String returns the human-readable heuristic name used in CLI output
// and rendered metadata.
func (h Heuristic) String() string {
	switch h {
	case Plain:
		return "plain"
	case Centrifugal:
		return "centrifugal"
	case Warnsdorff:
		return "warnsdorff"
	default:
		return "unknown"
	}
}

// Strategy produces, for a board snapshot and a padded position, the
// ordered list of legal (currently Empty) knight destinations, plus the
// number of move examinations the call performed. The engine owns the
// statistics counter; strategies only report their cost.
//
// Contracts:
//   - Pure: no board mutation, no internal state; two calls on the same
//     snapshot yield identical output.
//   - Stable: candidates with equal ordering keys keep the relative order
//     induced by the canonical board.KnightMoves enumeration.
//   - Consulted exactly once per search frame, at frame creation.
type Strategy interface {
	Moves(b *board.Board, x, y int) (dst []board.Coord, examined int)
}

// New returns the Strategy implementing h, or ErrUnknownHeuristic.
func New(h Heuristic) (Strategy, error) {
	switch h {
	case Plain:
		return plainStrategy{}, nil
	case Centrifugal:
		return centrifugalStrategy{}, nil
	case Warnsdorff:
		return warnsdorffStrategy{}, nil
	default:
		return nil, ErrUnknownHeuristic
	}
}
