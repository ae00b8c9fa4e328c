package core_test

import (
	"testing"

	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

// boardFromRows builds a board from Size rows of color characters (R, B, G, O).
func boardFromRows(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	if len(rows) != core.Size {
		t.Fatalf("need %d rows, got %d", core.Size, len(rows))
	}
	colors := make([]core.Color, 0, core.CellCount)
	for y, row := range rows {
		if len(row) != core.Size {
			t.Fatalf("row %d: need %d cells, got %d", y, core.Size, len(row))
		}
		for _, ch := range row {
			c, ok := core.ParseColor(string(ch))
			if !ok {
				t.Fatalf("row %d: unknown color %q", y, ch)
			}
			colors = append(colors, c)
		}
	}
	b, err := core.NewBoardFromColors(colors)
	if err != nil {
		t.Fatalf("NewBoardFromColors: %v", err)
	}
	return b
}

// uniformBoard returns a board painted entirely in one color.
func uniformBoard(t *testing.T, color core.Color) *core.Board {
	t.Helper()
	colors := make([]core.Color, core.CellCount)
	for i := range colors {
		colors[i] = color
	}
	b, err := core.NewBoardFromColors(colors)
	if err != nil {
		t.Fatalf("NewBoardFromColors: %v", err)
	}
	return b
}

// checkerboard returns a two-color checkerboard with blue at (0,0).
func checkerboard(t *testing.T) *core.Board {
	t.Helper()
	return boardFromRows(t,
		"BGBGBGBG",
		"GBGBGBGB",
		"BGBGBGBG",
		"GBGBGBGB",
		"BGBGBGBG",
		"GBGBGBGB",
		"BGBGBGBG",
		"GBGBGBGB",
	)
}

func sameMembers(a, b core.Selection) bool {
	if len(a) != len(b) {
		return false
	}
	for _, c := range a {
		if !b.Contains(c) {
			return false
		}
	}
	return true
}
