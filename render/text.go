// Package render - fixed-width terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/solver"
)

// Text renders the tour as a move-number grid in reading order, one row
// per line. Every cell is right-aligned to the widest move number, so
// columns stay aligned on any board size. Obstacles print as "#" and
// cells the path never reached (an empty or partial Result) as ".".
//
// Complexity: O(W×H) time and output size.
func Text(res solver.Result, opts solver.Options) string {
	var (
		cells = make(map[board.Coord]int, len(res.Path))
		i     int
		c     board.Coord
	)
	for i, c = range res.Path {
		cells[c] = i
	}
	blocked := make(map[board.Coord]struct{}, len(opts.Obstacles))
	for _, c = range opts.Obstacles {
		blocked[c] = struct{}{}
	}

	// Column width: the widest move number wins; "#" and "." pad to it.
	width := len(fmt.Sprint(opts.Width*opts.Height - 1))
	if width < 2 {
		width = 2
	}

	var (
		sb   strings.Builder
		x, y int
		n    int
		ok   bool
	)
	for y = 0; y < opts.Height; y++ {
		for x = 0; x < opts.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c = board.Coord{X: x, Y: y}
			if _, ok = blocked[c]; ok {
				fmt.Fprintf(&sb, "%*s", width, "#")
				continue
			}
			if n, ok = cells[c]; ok {
				fmt.Fprintf(&sb, "%*d", width, n)
				continue
			}
			fmt.Fprintf(&sb, "%*s", width, ".")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
