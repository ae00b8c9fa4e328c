package core

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned when asked to move a selection with no members.
var ErrEmptySelection = errors.New("core: empty selection")

// Move shifts the selected region one cell in direction d.
//
// The member furthest along d decides the move: if the cell beyond it is
// off the board nothing changes and moved is false. Otherwise each member,
// taken in d's comparator order, swaps colors with whatever currently sits
// one step along d, and the selection is re-derived from the cell beyond
// that leading member.
func Move(s Surface, sel Selection, d Dir, width int) (next Selection, moved bool, err error) {
	if len(sel) == 0 {
		return nil, false, ErrEmptySelection
	}

	order := sel.Sorted(d)
	lead := order[0]
	target := lead.Step(d)
	if !target.InBounds() {
		return sel, false, nil
	}

	for _, c := range order {
		swapColors(s, c, c.Step(d))
	}

	next, err = Select(s, target, width)
	if err != nil {
		return sel, false, fmt.Errorf("move %s: %w", d, err)
	}
	return next, true, nil
}

func swapColors(s Surface, a, b Coord) {
	ca := s.Color(a)
	s.SetColor(a, s.Color(b))
	s.SetColor(b, ca)
}
