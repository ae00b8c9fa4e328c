package config

import (
	_ "embed"
)

//go:embed defaults/colorshift.yaml
var defaultColorShiftYAML []byte

// DefaultColorShiftConfig returns the default Color Shift configuration.
func DefaultColorShiftConfig() ColorShiftConfig {
	return ColorShiftConfig{
		Palette: []string{"red", "blue", "green", "orange"},
		Status:  "Click then Arrow",
		Board: BoardConfig{
			BorderWidth: 5,
			CellWidth:   3,
			CellHeight:  1,
		},
		TickRate: 30,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColorShiftYAML
}
