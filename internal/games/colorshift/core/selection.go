package core

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultBorderWidth is the thickness drawn on the outer sides of a selection.
const DefaultBorderWidth = 5

// ErrOutOfBounds is returned when a seed or target lies off the board.
var ErrOutOfBounds = errors.New("core: coordinate out of bounds")

// Selection is a 4-connected region of same-colored cells, in the order the
// flood fill visited them.
type Selection []Coord

// Contains reports whether c is a member of the selection.
func (s Selection) Contains(c Coord) bool {
	return slices.Contains(s, c)
}

// Clone returns a copy of the selection.
func (s Selection) Clone() Selection {
	return slices.Clone(s)
}

// Sorted returns a copy ordered by d's comparator. Ties keep their order.
func (s Selection) Sorted(d Dir) Selection {
	sorted := s.Clone()
	slices.SortStableFunc(sorted, d.Compare)
	return sorted
}

// Extremal returns the member ranked first by d's comparator.
func (s Selection) Extremal(d Dir) (Coord, bool) {
	if len(s) == 0 {
		return Coord{}, false
	}
	return s.Sorted(d)[0], true
}

// Select flood-fills the region of cells sharing the seed's color.
//
// Every border on the surface is cleared first. Each visited cell then gets
// a border of the given width on the sides that face a different color or
// the board edge, and zero on the sides shared with the region.
// Neighbors are explored depth-first in Dirs() order.
func Select(s Surface, seed Coord, width int) (Selection, error) {
	if !seed.InBounds() {
		return nil, fmt.Errorf("select %v: %w", seed, ErrOutOfBounds)
	}

	s.ClearBorders()

	color := s.Color(seed)
	dirs := Dirs()

	var visited [CellCount]bool
	var region Selection
	stack := []Coord{seed}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[c.index()] {
			continue
		}
		visited[c.index()] = true
		region = append(region, c)

		border := UniformBorder(width)
		// Reverse push so the first direction is explored first.
		for i := len(dirs) - 1; i >= 0; i-- {
			n := c.Step(dirs[i])
			if !n.InBounds() || s.Color(n) != color {
				continue
			}
			border.SetSide(dirs[i], 0)
			if !visited[n.index()] {
				stack = append(stack, n)
			}
		}
		s.SetBorder(c, border)
	}

	return region, nil
}
