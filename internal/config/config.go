// Package config provides YAML-based game configuration loading for the
// color sort puzzle.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxPaletteSize is the largest palette a config may declare.
const MaxPaletteSize = 8

// ColorSortConfig contains the generation settings for Color Sort.
type ColorSortConfig struct {
	Palette []string     `yaml:"palette"`
	Levels  []LevelEntry `yaml:"levels"`
}

// LevelEntry defines one row of the level table.
type LevelEntry struct {
	Containers int `yaml:"containers"`
	Colors     int `yaml:"colors"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid color sort config")

// Validate checks that every level can be generated from the palette.
func (c ColorSortConfig) Validate() error {
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	if len(c.Palette) > MaxPaletteSize {
		return fmt.Errorf("%w: palette has %d colors, max %d", ErrInvalidConfig, len(c.Palette), MaxPaletteSize)
	}

	seen := make(map[string]bool, len(c.Palette))
	for i, spec := range c.Palette {
		if !ValidColorSpec(spec) {
			return fmt.Errorf("%w: palette[%d] %q is not a color", ErrInvalidConfig, i, spec)
		}
		key := strings.ToUpper(spec)
		if seen[key] {
			return fmt.Errorf("%w: palette[%d] %q is a duplicate", ErrInvalidConfig, i, spec)
		}
		seen[key] = true
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidConfig)
	}
	for i, lvl := range c.Levels {
		if lvl.Containers < 1 {
			return fmt.Errorf("%w: level %d needs at least one container", ErrInvalidConfig, i+1)
		}
		if lvl.Colors < 1 || lvl.Colors > len(c.Palette) {
			return fmt.Errorf("%w: level %d wants %d colors, palette has %d", ErrInvalidConfig, i+1, lvl.Colors, len(c.Palette))
		}
	}
	return nil
}

// ValidColorSpec reports whether s is "#RGB", "#RRGGBB" or an ANSI index 0-255.
func ValidColorSpec(s string) bool {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
