package core_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

// pairBoard has a red 2x1 region at (3,3)-(4,3) with orange to its right,
// on a blue/green checkerboard.
func pairBoard(t *testing.T) *core.Board {
	t.Helper()
	return boardFromRows(t,
		"BGBGBGBG",
		"GBGBGBGB",
		"BGBGBGBG",
		"GBGRROGB",
		"BGBGBGBG",
		"GBGBGBGB",
		"BGBGBGBG",
		"GBGBGBGB",
	)
}

func TestMoveChainedShiftRight(t *testing.T) {
	b := pairBoard(t)
	sel, err := core.Select(b, core.C(3, 3), core.DefaultBorderWidth)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !sameMembers(sel, core.Selection{core.C(3, 3), core.C(4, 3)}) {
		t.Fatalf("initial selection = %v", sel)
	}

	next, moved, err := core.Move(b, sel, core.DirRight, core.DefaultBorderWidth)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !moved {
		t.Fatal("move right should succeed")
	}

	expectedColors := map[core.Coord]core.Color{
		core.C(3, 3): core.ColorOrange,
		core.C(4, 3): core.ColorRed,
		core.C(5, 3): core.ColorRed,
	}
	for c, want := range expectedColors {
		if got := b.Color(c); got != want {
			t.Errorf("color at %v = %v, expected %v", c, got, want)
		}
	}

	// Re-derived from the cell beyond the leading member.
	expectedSel := core.Selection{core.C(5, 3), core.C(4, 3)}
	if !slices.Equal(next, expectedSel) {
		t.Errorf("new selection = %v, expected %v", next, expectedSel)
	}

	if got, want := b.Border(core.C(5, 3)), (core.Border{Top: 5, Right: 5, Bottom: 5, Left: 0}); got != want {
		t.Errorf("border at (5,3) = %+v, expected %+v", got, want)
	}
	if got, want := b.Border(core.C(4, 3)), (core.Border{Top: 5, Right: 0, Bottom: 5, Left: 5}); got != want {
		t.Errorf("border at (4,3) = %+v, expected %+v", got, want)
	}
	if got := b.Border(core.C(3, 3)); !got.IsZero() {
		t.Errorf("vacated cell should have no border, got %+v", got)
	}
}

func TestMoveColumnDown(t *testing.T) {
	b := boardFromRows(t,
		"BGBGBGBG",
		"GBRBGBGB",
		"BGRGBGBG",
		"GBRBGBGB",
		"BGOGBGBG",
		"GBGBGBGB",
		"BGBGBGBG",
		"GBGBGBGB",
	)
	sel, err := core.Select(b, core.C(2, 1), core.DefaultBorderWidth)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(sel) != 3 {
		t.Fatalf("expected a 3-cell column, got %v", sel)
	}

	next, moved, err := core.Move(b, sel, core.DirBottom, core.DefaultBorderWidth)
	if err != nil || !moved {
		t.Fatalf("Move: moved=%v err=%v", moved, err)
	}

	if got := b.Color(core.C(2, 1)); got != core.ColorOrange {
		t.Errorf("top of old column should hold the displaced orange, got %v", got)
	}
	for y := 2; y <= 4; y++ {
		if got := b.Color(core.C(2, y)); got != core.ColorRed {
			t.Errorf("color at (2,%d) = %v, expected red", y, got)
		}
	}
	if next[0] != core.C(2, 4) || len(next) != 3 {
		t.Errorf("new selection = %v, expected 3 cells anchored at (2,4)", next)
	}
}

func TestMoveAtEdgeIsNoop(t *testing.T) {
	testCases := []struct {
		name string
		seed core.Coord
		dir  core.Dir
	}{
		{"top row up", core.C(4, 0), core.DirTop},
		{"right column right", core.C(7, 3), core.DirRight},
		{"bottom row down", core.C(2, 7), core.DirBottom},
		{"left column left", core.C(0, 5), core.DirLeft},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := checkerboard(t)
			sel, err := core.Select(b, tc.seed, core.DefaultBorderWidth)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			before := b.Clone()

			next, moved, err := core.Move(b, sel, tc.dir, core.DefaultBorderWidth)
			if err != nil {
				t.Fatalf("Move: %v", err)
			}
			if moved {
				t.Error("move off the board should be a no-op")
			}
			if !slices.Equal(next, sel) {
				t.Errorf("selection changed: %v -> %v", sel, next)
			}
			if !b.Equal(before) {
				t.Error("board changed on a no-op move")
			}
		})
	}
}

func TestMoveEmptySelection(t *testing.T) {
	b := checkerboard(t)
	before := b.Clone()

	_, moved, err := core.Move(b, nil, core.DirLeft, core.DefaultBorderWidth)
	if !errors.Is(err, core.ErrEmptySelection) {
		t.Errorf("error = %v, expected ErrEmptySelection", err)
	}
	if moved {
		t.Error("empty selection must not move")
	}
	if !b.Equal(before) {
		t.Error("board changed")
	}
}

func TestMovePreservesColorCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := core.NewBoard()
	if err := core.Setup(b, rng, core.DefaultPalette(), core.DefaultStatus); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	want := b.Counts()

	sel, err := core.Select(b, core.C(rng.Intn(core.Size), rng.Intn(core.Size)), core.DefaultBorderWidth)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	for i := range 500 {
		if i%7 == 0 {
			sel, err = core.Select(b, core.C(rng.Intn(core.Size), rng.Intn(core.Size)), core.DefaultBorderWidth)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
		}
		d := core.Dirs()[rng.Intn(4)]
		sel, _, err = core.Move(b, sel, d, core.DefaultBorderWidth)
		if err != nil {
			t.Fatalf("Move: %v", err)
		}

		got := b.Counts()
		for _, c := range core.DefaultPalette() {
			if got[c] != want[c] || got[c] != 16 {
				t.Fatalf("step %d: %v count = %d, expected 16", i, c, got[c])
			}
		}
		if len(sel) == 0 {
			t.Fatalf("step %d: selection became empty", i)
		}
	}
}
