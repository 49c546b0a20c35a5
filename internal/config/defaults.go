package config

import (
	_ "embed"
)

//go:embed defaults/colorsort.yaml
var defaultColorSortYAML []byte

// DefaultColorSortConfig returns the hardcoded Color Sort configuration.
// It matches defaults/colorsort.yaml and backs it up if the embed is unusable.
func DefaultColorSortConfig() ColorSortConfig {
	return ColorSortConfig{
		Palette: []string{
			"#FF5733",
			"#33FF57",
			"#3357FF",
			"#FF33A1",
			"#A133FF",
			"#33FFA1",
			"#FFC300",
			"#C70039",
		},
		Levels: []LevelEntry{
			{Containers: 2, Colors: 2},
			{Containers: 3, Colors: 3},
			{Containers: 4, Colors: 3},
			{Containers: 4, Colors: 4},
			{Containers: 5, Colors: 4},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultColorSortYAML
}
