// Package board provides the sentinel-padded grid the search engines run
// on. The two-cell Blocked margin removes every per-move boundary check:
// any knight destination computed from a logical cell is a valid index
// into the padded grid, and off-board destinations simply read as
// Blocked. Obstacles supplied by the caller are interior Blocked cells;
// the engines treat them and the border identically.
package board

// New constructs a Board of the given logical size with the given
// obstacle cells (logical coordinates). It returns ErrBadDimensions for
// non-positive sizes, ErrObstacleOutOfRange for an obstacle outside the
// logical area and ErrObstacleOnBlocked for a duplicate obstacle.
// Complexity: O(W×H) time and memory.
func New(width, height int, obstacles []Coord) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	var (
		stride = width + 2*Margin
		rows   = height + 2*Margin
		b      = &Board{
			Width:  width,
			Height: height,
			cells:  make([]int, stride*rows),
			stride: stride,
		}
		x, y int
	)
	// Everything starts Blocked; only the logical interior becomes Empty.
	for i := range b.cells {
		b.cells[i] = Blocked
	}
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			b.cells[(y+Margin)*stride+(x+Margin)] = Empty
		}
	}
	// Obstacles are logical coordinates; validate before writing.
	var ob Coord
	for _, ob = range obstacles {
		if ob.X < 0 || ob.X >= width || ob.Y < 0 || ob.Y >= height {
			return nil, ErrObstacleOutOfRange
		}
		idx := (ob.Y+Margin)*stride + (ob.X + Margin)
		if b.cells[idx] == Blocked {
			return nil, ErrObstacleOnBlocked
		}
		b.cells[idx] = Blocked
	}
	b.free = width*height - len(obstacles)

	return b, nil
}

// Padded converts a logical coordinate to padded-grid space.
// Complexity: O(1).
func (b *Board) Padded(c Coord) Coord {
	return Coord{X: c.X + Margin, Y: c.Y + Margin}
}

// Logical converts a padded coordinate back to caller-facing space.
// Complexity: O(1).
func (b *Board) Logical(c Coord) Coord {
	return Coord{X: c.X - Margin, Y: c.Y - Margin}
}

// At returns the raw cell value at padded coordinates: a move index
// (≥ 0) or one of Empty, Blocked, MirrorBlocked. No bounds check — the
// sentinel margin guarantees every knight destination is addressable.
// Complexity: O(1).
func (b *Board) At(x, y int) int {
	return b.cells[y*b.stride+x]
}

// IsEmpty reports whether the padded cell (x,y) is enterable.
// Complexity: O(1).
func (b *Board) IsEmpty(x, y int) bool {
	return b.cells[y*b.stride+x] == Empty
}

// Mark records that the knight entered padded cell (x,y) as move number
// moveNum. The cell must currently be Empty; Mark does not verify this.
// Complexity: O(1).
func (b *Board) Mark(x, y, moveNum int) {
	b.cells[y*b.stride+x] = moveNum
}

// Unmark reverts padded cell (x,y) to Empty during backtracking.
// Complexity: O(1).
func (b *Board) Unmark(x, y int) {
	b.cells[y*b.stride+x] = Empty
}

// MarkMirrorBlocked reserves padded cell (x,y) for the mirrored half of
// a symmetric tour. The cell must currently be Empty.
// Complexity: O(1).
func (b *Board) MarkMirrorBlocked(x, y int) {
	b.cells[y*b.stride+x] = MirrorBlocked
}

// FreeCells returns the number of Empty cells at construction time, i.e.
// the number of cells a full tour must cover. Obstacles never count.
// Complexity: O(1).
func (b *Board) FreeCells() int {
	return b.free
}

// Connects reports whether cell c is exactly one knight move away from
// cell a, enumerating KnightMoves in canonical order.
// Complexity: O(8).
func Connects(a, c Coord) bool {
	var m Offset
	for _, m = range KnightMoves {
		if a.X+m.DX == c.X && a.Y+m.DY == c.Y {
			return true
		}
	}

	return false
}
