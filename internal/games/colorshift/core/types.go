// Package core holds the rules of Color Shift: flood-fill selection over an
// 8x8 colored board and shifting the selected region one cell at a time.
// This package is UI-agnostic and deterministic for a given random source.
package core

import (
	"cmp"
	"fmt"
)

// Size is the width and height of the square board.
const Size = 8

// CellCount is the number of cells on the board.
const CellCount = Size * Size

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return min(x, y) >= 0 && max(x, y) < Size
}

// Coord represents a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbor one cell away in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return InBounds(c.X, c.Y)
}

// index converts an in-bounds coordinate to its row-major cell index.
func (c Coord) index() int {
	return c.Y*Size + c.X
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirTop Dir = iota
	DirRight
	DirBottom
	DirLeft
)

// Dirs returns the direction table in its fixed order.
// Flood fill explores neighbors in this order.
func Dirs() []Dir {
	return []Dir{DirTop, DirRight, DirBottom, DirLeft}
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirBottom:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Compare orders two coordinates so that the one furthest along d comes
// first: ascending y for top, descending x for right, descending y for
// bottom and ascending x for left.
func (d Dir) Compare(a, b Coord) int {
	switch d {
	case DirTop:
		return cmp.Compare(a.Y, b.Y)
	case DirRight:
		return cmp.Compare(b.X, a.X)
	case DirBottom:
		return cmp.Compare(b.Y, a.Y)
	case DirLeft:
		return cmp.Compare(a.X, b.X)
	default:
		return 0
	}
}

// Border holds the drawn thickness of each side of a cell. Zero means no border.
type Border struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformBorder returns a border with the same thickness on all sides.
func UniformBorder(width int) Border {
	return Border{Top: width, Right: width, Bottom: width, Left: width}
}

// Side returns the thickness of the side facing d.
func (b Border) Side(d Dir) int {
	switch d {
	case DirTop:
		return b.Top
	case DirRight:
		return b.Right
	case DirBottom:
		return b.Bottom
	case DirLeft:
		return b.Left
	default:
		return 0
	}
}

// SetSide sets the thickness of the side facing d.
func (b *Border) SetSide(d Dir, width int) {
	switch d {
	case DirTop:
		b.Top = width
	case DirRight:
		b.Right = width
	case DirBottom:
		b.Bottom = width
	case DirLeft:
		b.Left = width
	}
}

// IsZero reports whether no side is drawn.
func (b Border) IsZero() bool {
	return b == Border{}
}
