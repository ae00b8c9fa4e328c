package core_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

func TestSessionStartsIdle(t *testing.T) {
	b := checkerboard(t)
	s := core.NewSession(b, core.DefaultBorderWidth)

	if s.HasSelection() {
		t.Fatal("new session should have no selection")
	}

	before := b.Clone()
	for _, k := range []core.Key{core.KeyArrowUp, core.KeyArrowRight, core.KeyArrowDown, core.KeyArrowLeft} {
		moved, err := s.KeyDown(k)
		if err != nil || moved {
			t.Errorf("KeyDown(%v) with no selection: moved=%v err=%v", k, moved, err)
		}
	}
	if !b.Equal(before) {
		t.Error("arrow keys without a selection must not change the board")
	}
}

func TestSessionIgnoresOtherKeys(t *testing.T) {
	b := pairBoard(t)
	s := core.NewSession(b, core.DefaultBorderWidth)
	if err := s.Touch(core.C(3, 3)); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	before := b.Clone()

	for _, k := range []core.Key{core.KeyNone, core.Key(42), core.Key(-1)} {
		moved, err := s.KeyDown(k)
		if err != nil || moved {
			t.Errorf("KeyDown(%d): moved=%v err=%v", k, moved, err)
		}
	}
	if !b.Equal(before) {
		t.Error("non-arrow keys must not change the board")
	}
}

func TestSessionTouchAndMove(t *testing.T) {
	b := pairBoard(t)
	s := core.NewSession(b, core.DefaultBorderWidth)

	if err := s.Touch(core.C(4, 3)); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if !sameMembers(s.Selection(), core.Selection{core.C(3, 3), core.C(4, 3)}) {
		t.Fatalf("selection = %v", s.Selection())
	}

	moved, err := s.KeyDown(core.KeyArrowRight)
	if err != nil || !moved {
		t.Fatalf("KeyDown(right): moved=%v err=%v", moved, err)
	}
	if !sameMembers(s.Selection(), core.Selection{core.C(4, 3), core.C(5, 3)}) {
		t.Errorf("selection after move = %v", s.Selection())
	}

	// Walk the pair to the right edge; the last press is refused.
	for range 2 {
		if moved, err := s.Move(core.DirRight); err != nil || !moved {
			t.Fatalf("Move(right): moved=%v err=%v", moved, err)
		}
	}
	if moved, err := s.Move(core.DirRight); err != nil || moved {
		t.Errorf("Move at the edge: moved=%v err=%v", moved, err)
	}
	if !sameMembers(s.Selection(), core.Selection{core.C(6, 3), core.C(7, 3)}) {
		t.Errorf("selection at the edge = %v", s.Selection())
	}
}

func TestSessionTouchReplacesSelection(t *testing.T) {
	b := checkerboard(t)
	s := core.NewSession(b, core.DefaultBorderWidth)

	if err := s.Touch(core.C(0, 0)); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := s.Touch(core.C(6, 6)); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	sel := s.Selection()
	if len(sel) != 1 || sel[0] != core.C(6, 6) {
		t.Errorf("selection = %v, expected [(6,6)]", sel)
	}
	if !b.Border(core.C(0, 0)).IsZero() {
		t.Error("previous selection's border should be cleared")
	}
}

func TestSessionTouchTwiceIsIdempotent(t *testing.T) {
	b := core.NewBoard()
	if err := core.Setup(b, rand.New(rand.NewSource(5)), core.DefaultPalette(), core.DefaultStatus); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	s := core.NewSession(b, core.DefaultBorderWidth)

	for y := range core.Size {
		for x := range core.Size {
			if err := s.Touch(core.C(x, y)); err != nil {
				t.Fatalf("Touch: %v", err)
			}
			first := s.Selection()
			if err := s.Touch(core.C(x, y)); err != nil {
				t.Fatalf("Touch: %v", err)
			}
			if !slices.Equal(first, s.Selection()) {
				t.Fatalf("touching (%d,%d) twice gave %v then %v", x, y, first, s.Selection())
			}
		}
	}
}

func TestSessionRejectedTouchKeepsSelection(t *testing.T) {
	b := checkerboard(t)
	s := core.NewSession(b, core.DefaultBorderWidth)
	if err := s.Touch(core.C(2, 2)); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	err := s.Touch(core.C(9, 0))
	if !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("Touch off the board: err = %v, expected ErrOutOfBounds", err)
	}
	if sel := s.Selection(); len(sel) != 1 || sel[0] != core.C(2, 2) {
		t.Errorf("selection should be kept, got %v", sel)
	}
}

func TestSelectionIsACopy(t *testing.T) {
	b := checkerboard(t)
	s := core.NewSession(b, core.DefaultBorderWidth)
	if err := s.Touch(core.C(1, 1)); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	sel := s.Selection()
	sel[0] = core.C(7, 7)

	if s.Selection()[0] != core.C(1, 1) {
		t.Error("mutating the returned selection must not affect the session")
	}
}
