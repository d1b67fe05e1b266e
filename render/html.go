// Package render - standalone HTML/SVG document generation.
//
// The document embeds everything it needs: the grid and path as inline
// SVG, the styling as an inline stylesheet and, in animated mode, the
// tour as an inline JSON array driven by a small control script. Cell
// geometry follows one rule everywhere: a square's pixel origin is
// (margin + x·cell, y·cell), its center half a cell further.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/solver"
)

// HTML renders res as a complete HTML document. Static mode draws the
// finished tour; opts.Animate swaps the drawing for step/play controls
// that rebuild the path move by move in the browser.
//
// Errors: ErrEmptyPath when res has no path, ErrBadCellSize when
// opts.CellSize is negative (zero selects DefaultCellSize).
//
// Complexity: O(n + W×H) output size.
func HTML(res solver.Result, opts Options) (string, error) {
	if len(res.Path) == 0 {
		return "", ErrEmptyPath
	}
	if opts.CellSize < 0 {
		return "", ErrBadCellSize
	}
	if opts.CellSize == 0 {
		opts.CellSize = DefaultCellSize
	}

	cv := &canvas{
		path:     res.Path,
		width:    opts.Solve.Width,
		height:   opts.Solve.Height,
		cell:     opts.CellSize,
		closed:   res.Closed,
		symmetry: opts.Solve.Symmetry,
	}

	var (
		svg      string
		controls string
		script   string
	)
	if opts.Animate {
		svg = cv.svgAnimated()
		controls = controlsHTML
		script = "<script>\n" + cv.animationJS() + "\n</script>"
	} else {
		svg = cv.svgStatic()
	}

	return fmt.Sprintf(documentTemplate,
		cv.width, cv.height, stylesheet, metadataHTML(res, opts), svg, controls, script), nil
}

// canvas carries the pixel geometry of one drawing. All generator
// methods append SVG fragments; none of them mutate the canvas.
type canvas struct {
	path          []board.Coord
	width, height int
	cell          int
	closed        bool
	symmetry      solver.Symmetry
}

func (cv *canvas) svgWidth() int  { return labelMargin + cv.width*cv.cell }
func (cv *canvas) svgHeight() int { return labelMargin + cv.height*cv.cell }

// cellCenter returns the pixel midpoint of logical cell (x,y).
func (cv *canvas) cellCenter(x, y int) (float64, float64) {
	cx := float64(labelMargin) + float64(x)*float64(cv.cell) + float64(cv.cell)/2
	cy := float64(y)*float64(cv.cell) + float64(cv.cell)/2

	return cx, cy
}

// gradient interpolates the progress color from startColor to endColor.
func gradient(ratio float64) string {
	r := int(0x22 + (0xef-0x22)*ratio)
	g := int(0xc5 - (0xc5-0x44)*ratio)
	b := int(0x5e - (0x5e-0x44)*ratio)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// grid draws the board squares, checkered or plain.
func (cv *canvas) grid(colored bool) string {
	var (
		sb   strings.Builder
		x, y int
	)
	for y = 0; y < cv.height; y++ {
		for x = 0; x < cv.width; x++ {
			px := labelMargin + x*cv.cell
			py := y * cv.cell
			if colored {
				color := lightSquare
				if (x+y)%2 != 0 {
					color = darkSquare
				}
				fmt.Fprintf(&sb,
					`    <rect x="%d" y="%d" width="%d" height="%d" fill="%s" />`+"\n",
					px, py, cv.cell, cv.cell, color)
				continue
			}
			fmt.Fprintf(&sb,
				`    <rect x="%d" y="%d" width="%d" height="%d" fill="white" stroke="#ccc" stroke-width="1" />`+"\n",
				px, py, cv.cell, cv.cell)
		}
	}

	return sb.String()
}

// coordinates labels the columns along the bottom and rows on the left.
func (cv *canvas) coordinates() string {
	var (
		sb   strings.Builder
		x, y int
	)
	for x = 0; x < cv.width; x++ {
		px := labelMargin + x*cv.cell + cv.cell/2
		py := cv.height*cv.cell + 20
		fmt.Fprintf(&sb,
			`    <text x="%d" y="%d" text-anchor="middle" font-size="12" fill="#333">%d</text>`+"\n",
			px, py, x)
	}
	for y = 0; y < cv.height; y++ {
		py := y*cv.cell + cv.cell/2 + 4
		fmt.Fprintf(&sb,
			`    <text x="10" y="%d" text-anchor="middle" font-size="12" fill="#333">%d</text>`+"\n",
			py, y)
	}

	return sb.String()
}

// line appends one stroked segment between the centers of cells a and b.
func (cv *canvas) line(sb *strings.Builder, a, b board.Coord, color, extra string) {
	x1, y1 := cv.cellCenter(a.X, a.Y)
	x2, y2 := cv.cellCenter(b.X, b.Y)
	fmt.Fprintf(sb,
		`    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4" stroke-linecap="round"%s />`+"\n",
		x1, y1, x2, y2, color, extra)
}

const dashed = ` stroke-dasharray="8,4"`

// pathLines draws the tour. Non-symmetric tours get the progress
// gradient and, when closed, a dashed closing edge. Symmetric tours get
// the two half-path colors with a dashed splice between them; the
// closing edge is implied by the mirror structure and stays undrawn,
// matching the half-path reading of the picture.
func (cv *canvas) pathLines() string {
	var sb strings.Builder
	n := len(cv.path)
	if cv.symmetry != solver.SymNone {
		half := n / 2
		var i int
		for i = 0; i < half-1; i++ {
			cv.line(&sb, cv.path[i], cv.path[i+1], halfAColor, "")
		}
		if half > 0 && half < n {
			cv.line(&sb, cv.path[half-1], cv.path[half], spliceColor, dashed)
		}
		for i = half; i < n-1; i++ {
			cv.line(&sb, cv.path[i], cv.path[i+1], halfBColor, "")
		}

		return sb.String()
	}

	for i := 0; i < n-1; i++ {
		ratio := 0.0
		if n > 1 {
			ratio = float64(i) / float64(n-1)
		}
		cv.line(&sb, cv.path[i], cv.path[i+1], gradient(ratio), "")
	}
	if cv.closed && n > 1 {
		cv.line(&sb, cv.path[n-1], cv.path[0], endColor, dashed)
	}

	return sb.String()
}

// markers draws the translucent start (green) and end (red) circles.
func (cv *canvas) markers() string {
	var sb strings.Builder
	radius := cv.cell / 6
	sx, sy := cv.cellCenter(cv.path[0].X, cv.path[0].Y)
	fmt.Fprintf(&sb,
		`    <circle cx="%.1f" cy="%.1f" r="%d" fill="%s" opacity="0.5" />`+"\n",
		sx, sy, radius, startColor)
	last := cv.path[len(cv.path)-1]
	ex, ey := cv.cellCenter(last.X, last.Y)
	fmt.Fprintf(&sb,
		`    <circle cx="%.1f" cy="%.1f" r="%d" fill="%s" opacity="0.5" />`+"\n",
		ex, ey, radius, endColor)

	return sb.String()
}

// moveNumbers prints the move index centered in every visited cell.
func (cv *canvas) moveNumbers() string {
	var sb strings.Builder
	font := cv.cell / 3
	for i, c := range cv.path {
		cx, cy := cv.cellCenter(c.X, c.Y)
		fmt.Fprintf(&sb,
			`    <text x="%.1f" y="%.1f" text-anchor="middle" font-size="%d" font-weight="bold" fill="#1e293b">%d</text>`+"\n",
			cx, cy+float64(font)/3, font, i)
	}

	return sb.String()
}

func (cv *canvas) svgStatic() string {
	return fmt.Sprintf(`<svg id="board" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
%s%s    <g id="path-lines">
%s    </g>
%s    <g id="move-numbers">
%s    </g>
</svg>`,
		cv.svgWidth(), cv.svgHeight()+20,
		cv.grid(true), cv.coordinates(), cv.pathLines(), cv.markers(), cv.moveNumbers())
}

// svgAnimated emits the skeleton the control script draws into: both
// grid variants (colored shown, plain hidden), empty path and number
// groups, the hidden closing edge and the knight marker.
func (cv *canvas) svgAnimated() string {
	return fmt.Sprintf(`<svg id="board" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
    <g id="grid-colored">
%s    </g>
    <g id="grid-plain" style="display:none;">
%s    </g>
%s    <g id="path-lines"></g>
    <line id="closing-line" style="display:none;" stroke="%s" stroke-width="4" stroke-linecap="round" stroke-dasharray="8,4" />
    <circle id="knight" cx="0" cy="0" r="%d" fill="%s" stroke="#4c1d95" stroke-width="2" style="display:none;" />
    <g id="move-numbers"></g>
</svg>`,
		cv.svgWidth(), cv.svgHeight()+20,
		cv.grid(true), cv.grid(false), cv.coordinates(),
		endColor, cv.cell/4, knightColor)
}

// pathJSON inlines the tour as a [[x,y],...] array for the script.
func (cv *canvas) pathJSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range cv.path {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "[%d,%d]", c.X, c.Y)
	}
	sb.WriteByte(']')

	return sb.String()
}

// animationJS binds the control script to this tour's geometry.
func (cv *canvas) animationJS() string {
	return fmt.Sprintf(animationScript, cv.pathJSON(), cv.cell, labelMargin, cv.closed)
}

// metadataHTML builds the header line: board size, tour type, ordering
// and the run's cost.
func metadataHTML(res solver.Result, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<span>Board: %dx%d</span>\n", opts.Solve.Width, opts.Solve.Height)

	tourType := "Open"
	switch {
	case opts.Solve.Symmetry != solver.SymNone:
		tourType = "Symmetric (" + opts.Solve.Symmetry.String() + ")"
	case res.Closed:
		tourType = "Closed"
	}
	fmt.Fprintf(&sb, "        <span>Tour: %s</span>\n", tourType)
	fmt.Fprintf(&sb, "        <span>Move order: %s</span>\n", opts.Solve.Heuristic)
	fmt.Fprintf(&sb, "        <span>Examinations: %d</span>\n", res.Stats.Trials)
	fmt.Fprintf(&sb, "        <span>Time: %s</span>", res.Stats.Duration)

	return sb.String()
}

// documentTemplate wraps everything: title (board size), stylesheet,
// metadata header, the SVG and the optional controls plus script.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Knight's Tour - %dx%d</title>
    <style>%s</style>
</head>
<body>
    <h1>Knight's Tour Solution</h1>
    <div class="metadata">
        %s
    </div>
    %s
    %s
    %s
</body>
</html>
`
