package core

import "strings"

// Color is an opaque cell color token. The rules only ever compare colors
// for equality; the zero value marks a cell that was never painted.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorOrange
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorOrange:
		return 'O'
	default:
		return '.'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorNone and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "blue", "b":
		return ColorBlue, true
	case "green", "g":
		return ColorGreen, true
	case "orange", "o":
		return ColorOrange, true
	default:
		return ColorNone, false
	}
}

// DefaultPalette returns the four colors dealt onto a fresh board.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorBlue, ColorGreen, ColorOrange}
}
