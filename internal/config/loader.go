package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "colorshift.yaml"

// LoadColorShift loads Color Shift configuration and reports where it came from.
// Search order: customPath -> ~/.colorshift/configs/colorshift.yaml ->
// ./configs/colorshift.yaml -> embedded default -> hardcoded default.
//
// Fields missing from a file keep their default values. A custom path must
// exist. The other locations are skipped when absent, but a file that exists
// and cannot be read, parsed or validated is an error.
func LoadColorShift(customPath string) (ColorShiftConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultColorShiftConfig(), "", err
		}
		return cfg, customPath, nil
	}
	return loadFirst(userConfigPath(fileName), filepath.Join("configs", fileName))
}

// loadFirst loads the first of paths that exists, falling back to the
// embedded defaults when none does.
func loadFirst(paths ...string) (ColorShiftConfig, string, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return DefaultColorShiftConfig(), "", err
		}
		return cfg, path, nil
	}

	if cfg, err := parse(defaultColorShiftYAML); err == nil {
		return cfg, "embedded", nil
	}
	return DefaultColorShiftConfig(), "builtin", nil
}

func loadFile(path string) (ColorShiftConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ColorShiftConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return ColorShiftConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (ColorShiftConfig, error) {
	cfg := DefaultColorShiftConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorshift", "configs", filename)
}
