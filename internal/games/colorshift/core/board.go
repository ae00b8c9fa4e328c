package core

import "fmt"

// Surface is the drawing host the rules run against. It owns per-cell color
// state, cell borders and a status line.
type Surface interface {
	Color(c Coord) Color
	SetColor(c Coord, color Color)
	SetBorder(c Coord, b Border)
	ClearBorders()
	SetStatus(text string)
}

// Board is the in-memory Surface used by the terminal host.
// Cells are stored in row-major order: index = y*Size + x.
type Board struct {
	colors  [CellCount]Color
	borders [CellCount]Border
	status  string
}

var _ Surface = (*Board)(nil)

// NewBoard creates a board with every cell unpainted and no borders.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromColors creates a board from CellCount colors in row-major order.
func NewBoardFromColors(colors []Color) (*Board, error) {
	if len(colors) != CellCount {
		return nil, fmt.Errorf("core: board needs %d colors, got %d", CellCount, len(colors))
	}
	b := NewBoard()
	copy(b.colors[:], colors)
	return b, nil
}

// Color returns the color at c. Off-board coordinates read as ColorNone.
func (b *Board) Color(c Coord) Color {
	if !c.InBounds() {
		return ColorNone
	}
	return b.colors[c.index()]
}

// SetColor paints the cell at c. Off-board coordinates are ignored.
func (b *Board) SetColor(c Coord, color Color) {
	if c.InBounds() {
		b.colors[c.index()] = color
	}
}

// Border returns the border drawn around the cell at c.
func (b *Board) Border(c Coord) Border {
	if !c.InBounds() {
		return Border{}
	}
	return b.borders[c.index()]
}

// SetBorder sets the border drawn around the cell at c.
func (b *Board) SetBorder(c Coord, border Border) {
	if c.InBounds() {
		b.borders[c.index()] = border
	}
}

// ClearBorders removes every border on the board.
func (b *Board) ClearBorders() {
	b.borders = [CellCount]Border{}
}

// SetStatus sets the status line text.
func (b *Board) SetStatus(text string) {
	b.status = text
}

// Status returns the status line text.
func (b *Board) Status() string {
	return b.status
}

// Colors returns a copy of all cell colors in row-major order.
func (b *Board) Colors() [CellCount]Color {
	return b.colors
}

// Counts returns how many cells hold each color.
func (b *Board) Counts() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range b.colors {
		counts[c]++
	}
	return counts
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Equal reports whether two boards hold the same colors and borders.
func (b *Board) Equal(other *Board) bool {
	return b.colors == other.colors && b.borders == other.borders
}

// String renders the board as rows of color characters.
func (b *Board) String() string {
	buf := make([]rune, 0, CellCount+Size)
	for y := range Size {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := range Size {
			buf = append(buf, b.colors[C(x, y).index()].Char())
		}
	}
	return string(buf)
}
