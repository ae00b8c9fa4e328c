package core_test

import (
	"testing"

	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

func TestInBounds(t *testing.T) {
	for x := -3; x <= core.Size+2; x++ {
		for y := -3; y <= core.Size+2; y++ {
			expected := x >= 0 && x < 8 && y >= 0 && y < 8
			if got := core.InBounds(x, y); got != expected {
				t.Errorf("InBounds(%d, %d) = %v, expected %v", x, y, got, expected)
			}
			if got := core.C(x, y).InBounds(); got != expected {
				t.Errorf("C(%d, %d).InBounds() = %v, expected %v", x, y, got, expected)
			}
		}
	}
}

func TestDirTable(t *testing.T) {
	testCases := []struct {
		dir    core.Dir
		name   string
		dx, dy int
	}{
		{core.DirTop, "top", 0, -1},
		{core.DirRight, "right", 1, 0},
		{core.DirBottom, "bottom", 0, 1},
		{core.DirLeft, "left", -1, 0},
	}

	dirs := core.Dirs()
	if len(dirs) != len(testCases) {
		t.Fatalf("expected %d directions, got %d", len(testCases), len(dirs))
	}

	for i, tc := range testCases {
		if dirs[i] != tc.dir {
			t.Errorf("Dirs()[%d] = %v, expected %v", i, dirs[i], tc.dir)
		}
		if tc.dir.String() != tc.name {
			t.Errorf("%v.String() = %q, expected %q", tc.dir, tc.dir.String(), tc.name)
		}
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestDirCompare(t *testing.T) {
	sel := core.Selection{core.C(2, 3), core.C(5, 1), core.C(0, 6), core.C(4, 4)}

	testCases := []struct {
		dir   core.Dir
		first core.Coord
	}{
		{core.DirTop, core.C(5, 1)},    // smallest y
		{core.DirRight, core.C(5, 1)},  // largest x
		{core.DirBottom, core.C(0, 6)}, // largest y
		{core.DirLeft, core.C(0, 6)},   // smallest x
	}

	for _, tc := range testCases {
		got, ok := sel.Extremal(tc.dir)
		if !ok || got != tc.first {
			t.Errorf("Extremal(%v) = %v, expected %v", tc.dir, got, tc.first)
		}
	}

	if _, ok := core.Selection(nil).Extremal(core.DirTop); ok {
		t.Error("Extremal of an empty selection should report false")
	}
}

func TestSortedIsStable(t *testing.T) {
	sel := core.Selection{core.C(1, 2), core.C(1, 0), core.C(0, 1), core.C(1, 1)}
	sorted := sel.Sorted(core.DirRight)

	// All x=1 members come first, in their original order.
	expected := core.Selection{core.C(1, 2), core.C(1, 0), core.C(1, 1), core.C(0, 1)}
	for i := range expected {
		if sorted[i] != expected[i] {
			t.Fatalf("Sorted(right) = %v, expected %v", sorted, expected)
		}
	}
	if sel[0] != core.C(1, 2) || sel[2] != core.C(0, 1) {
		t.Error("Sorted should not reorder the receiver")
	}
}

func TestBorderSides(t *testing.T) {
	b := core.UniformBorder(5)
	b.SetSide(core.DirLeft, 0)

	if b.Side(core.DirTop) != 5 || b.Side(core.DirRight) != 5 || b.Side(core.DirBottom) != 5 {
		t.Errorf("unexpected border %+v", b)
	}
	if b.Side(core.DirLeft) != 0 {
		t.Errorf("left side should be 0, got %d", b.Side(core.DirLeft))
	}
	if b.IsZero() {
		t.Error("border with drawn sides should not be zero")
	}
	if !(core.Border{}).IsZero() {
		t.Error("empty border should be zero")
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range core.DefaultPalette() {
		parsed, ok := core.ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), parsed, ok)
		}
		parsed, ok = core.ParseColor(string(c.Char()))
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", string(c.Char()), parsed, ok)
		}
	}
	if _, ok := core.ParseColor("purple"); ok {
		t.Error("ParseColor should reject unknown colors")
	}
}
