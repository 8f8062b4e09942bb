package core

// Viewport maps a fixed logical playfield onto a grid of terminal cells.
// Game objects keep logical coordinates; only drawing and pointer input
// go through the viewport.
type Viewport struct {
	logicalW, logicalH int
	cols, rows         int
}

// NewViewport creates a viewport that stretches a logicalW x logicalH
// playfield over cols x rows cells.
func NewViewport(logicalW, logicalH, cols, rows int) Viewport {
	return Viewport{
		logicalW: max(1, logicalW),
		logicalH: max(1, logicalH),
		cols:     max(1, cols),
		rows:     max(1, rows),
	}
}

// Cols returns the number of cell columns.
func (v Viewport) Cols() int {
	return v.cols
}

// Rows returns the number of cell rows.
func (v Viewport) Rows() int {
	return v.rows
}

// ToCells converts a logical rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (v Viewport) ToCells(r Rect) Rect {
	x0 := floorDiv(r.X*v.cols, v.logicalW)
	y0 := floorDiv(r.Y*v.rows, v.logicalH)
	x1 := ceilDiv(r.Right()*v.cols, v.logicalW)
	y1 := ceilDiv(r.Bottom()*v.rows, v.logicalH)

	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ToLogical converts a cell position to the logical point at the cell center.
func (v Viewport) ToLogical(col, row int) Point {
	return Point{
		X: floorDiv((2*col+1)*v.logicalW, 2*v.cols),
		Y: floorDiv((2*row+1)*v.logicalH, 2*v.rows),
	}
}

// floorDiv divides rounding toward negative infinity; b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity; b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
