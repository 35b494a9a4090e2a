// Package canvas provides the fixed-size character surface every text
// renderer draws on.
//
// A [Canvas] is a width×height grid of runes initialised to blanks. It
// supports two primitives: a single point and an axis-aligned line. Lines
// are half-open: they cover every cell from the lower coordinate up to, but
// not including, the higher one. Renderers rely on this to stop a vertical
// drop one cell short of the corner a horizontal run will occupy.
//
//	c := canvas.New(5, 2)
//	_ = c.PutLine(canvas.Pt(0, 0), canvas.Pt(4, 0), '-')
//	_ = c.PutPoint(canvas.Pt(4, 1), 'v')
//	fmt.Println(c)
//
// Coordinates are (x, y) with y as the row index. Points outside the grid are
// reported as OUT_OF_BOUNDS errors; diagonal lines are silently ignored.
package canvas

import (
	"strings"

	"github.com/matzehuels/pathpane/pkg/errors"
)

// Blank is the rune every cell holds after [New].
const Blank = ' '

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Canvas is a fixed-size grid of runes.
type Canvas struct {
	width, height int
	cells         [][]rune
}

// Surface is implemented by anything that can be drawn as a canvas.
type Surface interface {
	Canvas() (*Canvas, error)
}

// New allocates a blank width×height canvas. Negative sizes are treated as 0.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Size returns the canvas width and height.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Contains reports whether p lies on the canvas.
func (c *Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// At returns the rune at p.
func (c *Canvas) At(p Point) (rune, bool) {
	if !c.Contains(p) {
		return 0, false
	}
	return c.cells[p.Y][p.X], true
}

// PutPoint sets the cell at p.
func (c *Canvas) PutPoint(p Point, r rune) error {
	if !c.Contains(p) {
		return errors.New(errors.ErrCodeOutOfBounds, "point (%d,%d) outside %dx%d canvas", p.X, p.Y, c.width, c.height)
	}
	c.cells[p.Y][p.X] = r
	return nil
}

// PutLine draws r on every cell between p1 and p2 along the axis they share,
// from the lower coordinate inclusive to the higher one exclusive. A line
// whose endpoints differ in both x and y is not drawn.
//
// The whole line is checked before drawing: if any covered cell is outside
// the canvas, nothing is drawn and an OUT_OF_BOUNDS error is returned.
func (c *Canvas) PutLine(p1, p2 Point, r rune) error {
	switch {
	case p1.Y == p2.Y:
		lo, hi := min(p1.X, p2.X), max(p1.X, p2.X)
		if lo == hi {
			return nil
		}
		if !c.Contains(Pt(lo, p1.Y)) || !c.Contains(Pt(hi-1, p1.Y)) {
			return errors.New(errors.ErrCodeOutOfBounds, "line (%d,%d)-(%d,%d) outside %dx%d canvas", p1.X, p1.Y, p2.X, p2.Y, c.width, c.height)
		}
		for x := lo; x < hi; x++ {
			c.cells[p1.Y][x] = r
		}
	case p1.X == p2.X:
		lo, hi := min(p1.Y, p2.Y), max(p1.Y, p2.Y)
		if lo == hi {
			return nil
		}
		if !c.Contains(Pt(p1.X, lo)) || !c.Contains(Pt(p1.X, hi-1)) {
			return errors.New(errors.ErrCodeOutOfBounds, "line (%d,%d)-(%d,%d) outside %dx%d canvas", p1.X, p1.Y, p2.X, p2.Y, c.width, c.height)
		}
		for y := lo; y < hi; y++ {
			c.cells[y][p1.X] = r
		}
	}
	return nil
}

// PutString writes s starting at p, one rune per cell. Runes past the right
// edge are dropped.
func (c *Canvas) PutString(p Point, s string) error {
	if !c.Contains(p) {
		if s == "" {
			return nil
		}
		return errors.New(errors.ErrCodeOutOfBounds, "text at (%d,%d) outside %dx%d canvas", p.X, p.Y, c.width, c.height)
	}
	x := p.X
	for _, r := range s {
		if x >= c.width {
			break
		}
		c.cells[p.Y][x] = r
		x++
	}
	return nil
}

// Fill sets every cell to r.
func (c *Canvas) Fill(r rune) {
	for _, row := range c.cells {
		for x := range row {
			row[x] = r
		}
	}
}

// Rows returns the canvas as one string per row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	for y, row := range c.cells {
		rows[y] = string(row)
	}
	return rows
}

// String renders the rows joined by newlines, without a trailing newline.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

// Equal reports whether two canvases have the same size and content.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.width != o.width || c.height != o.height {
		return false
	}
	for y := range c.cells {
		for x := range c.cells[y] {
			if c.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Parse reads text produced by [Canvas.String] back into a canvas. The width
// is the longest row; shorter rows are padded with blanks.
func Parse(text string) *Canvas {
	if text == "" {
		return New(0, 0)
	}
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	c := New(width, len(lines))
	for y, l := range lines {
		copy(c.cells[y], []rune(l))
	}
	return c
}
