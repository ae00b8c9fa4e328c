package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultStatus is the status line shown once the board is dealt.
const DefaultStatus = "Click then Arrow"

// paletteDoublings is how many times the palette is concatenated with
// itself to fill the board: 4 colors -> 64 cells.
const paletteDoublings = 4

// ErrPalette is returned when a palette cannot fill the board evenly.
var ErrPalette = errors.New("core: invalid palette")

// Deal builds the unshuffled board contents by doubling the palette.
// The palette must hold distinct painted colors and fill exactly CellCount cells.
func Deal(palette []Color) ([]Color, error) {
	if len(palette)<<paletteDoublings != CellCount {
		return nil, fmt.Errorf("%w: need %d colors, got %d", ErrPalette, CellCount>>paletteDoublings, len(palette))
	}

	seen := make(map[Color]bool, len(palette))
	for _, c := range palette {
		if c == ColorNone {
			return nil, fmt.Errorf("%w: unpainted color", ErrPalette)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate color %s", ErrPalette, c)
		}
		seen[c] = true
	}

	values := append([]Color(nil), palette...)
	for range paletteDoublings {
		values = append(values, values...)
	}
	return values, nil
}

// Setup deals a shuffled board onto the surface in row-major order, clears
// all borders and shows the status text.
func Setup(s Surface, rng *rand.Rand, palette []Color, status string) error {
	values, err := Deal(palette)
	if err != nil {
		return err
	}

	s.ClearBorders()
	for i, c := range Shuffle(rng, values) {
		s.SetColor(C(i%Size, i/Size), c)
	}
	s.SetStatus(status)
	return nil
}
