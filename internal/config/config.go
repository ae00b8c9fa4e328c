// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"
)

// ColorShiftConfig contains all configuration for the Color Shift game.
type ColorShiftConfig struct {
	Palette  []string    `yaml:"palette"`
	Status   string      `yaml:"status"`
	Board    BoardConfig `yaml:"board"`
	TickRate int         `yaml:"tick_rate"`
}

// BoardConfig defines how the board is drawn.
type BoardConfig struct {
	BorderWidth int `yaml:"border_width"` // Thickness of selection borders
	CellWidth   int `yaml:"cell_width"`   // Terminal columns per cell
	CellHeight  int `yaml:"cell_height"`  // Terminal rows per cell
}

// paletteSize is the number of colors dealt onto the board.
const paletteSize = 4

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the structural constraints of the config.
// Color names are resolved by the game, which owns the color set.
func (c ColorShiftConfig) Validate() error {
	if len(c.Palette) != paletteSize {
		return fmt.Errorf("%w: palette needs %d colors, got %d", ErrInvalidConfig, paletteSize, len(c.Palette))
	}
	if c.Board.BorderWidth < 0 {
		return fmt.Errorf("%w: border_width must not be negative", ErrInvalidConfig)
	}
	if c.Board.CellWidth < 1 || c.Board.CellHeight < 1 {
		return fmt.Errorf("%w: cell size must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Board.CellWidth, c.Board.CellHeight)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidConfig)
	}
	return nil
}
