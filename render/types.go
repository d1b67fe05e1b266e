// Package render - configuration and sentinel errors.
package render

import (
	"errors"

	"github.com/katalvlaran/knightour/solver"
)

var (
	// ErrEmptyPath indicates a render call with no tour to draw.
	ErrEmptyPath = errors.New("render: result carries no path")

	// ErrBadCellSize indicates a non-positive SVG cell size.
	ErrBadCellSize = errors.New("render: cell size must be positive")
)

// Board palette and layout. The values match the conventional
// chess-board colors; the path gradient runs green (start) to red (end).
const (
	// DefaultCellSize is the square edge in pixels.
	DefaultCellSize = 50

	// labelMargin reserves space for the coordinate labels.
	labelMargin = 30

	lightSquare = "#f0d9b5"
	darkSquare  = "#c59873"
	startColor  = "#22c55e"
	endColor    = "#ef4444"
	knightColor = "#7c3aed"

	// Symmetric tours use fixed half-path colors instead of the gradient.
	halfAColor  = "#2563eb"
	halfBColor  = "#dc2626"
	spliceColor = "#9333ea"
)

// Options configures the HTML renderer.
//
// Solve – the configuration the tour was produced with; supplies board
// geometry, the symmetry mode and the metadata header fields.
// CellSize – pixel edge of one square; DefaultCellSize when zero.
// Animate – embed step/play controls instead of the static drawing.
type Options struct {
	Solve    solver.Options
	CellSize int
	Animate  bool
}

// DefaultOptions returns the render configuration for a finished run:
// static drawing, default cell size.
func DefaultOptions(opts solver.Options) Options {
	return Options{
		Solve:    opts,
		CellSize: DefaultCellSize,
		Animate:  false,
	}
}
