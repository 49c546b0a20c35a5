package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".colorsort"

// LoadColorSort loads Color Sort configuration.
// Search order: customPath -> ~/.colorsort/configs/colorsort.yaml ->
// ./configs/colorsort.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when unusable.
func LoadColorSort(customPath string) (ColorSortConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorSortConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ColorSortConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("colorsort.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "colorsort.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultColorSortYAML); err == nil {
		return cfg, nil
	}
	return DefaultColorSortConfig(), nil
}

// parse decodes and validates a config document.
func parse(data []byte) (ColorSortConfig, error) {
	var cfg ColorSortConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
