package core

import "testing"

func TestConfigFor(t *testing.T) {
	tests := []struct {
		level    int
		expected LevelConfig
	}{
		{1, LevelConfig{Containers: 2, Colors: 2}},
		{2, LevelConfig{Containers: 3, Colors: 3}},
		{3, LevelConfig{Containers: 4, Colors: 3}},
		{4, LevelConfig{Containers: 4, Colors: 4}},
		{5, LevelConfig{Containers: 5, Colors: 4}},
		{6, LevelConfig{Containers: 5, Colors: 4}},
		{100, LevelConfig{Containers: 5, Colors: 4}},
		{0, LevelConfig{Containers: 2, Colors: 2}},
	}

	for _, tc := range tests {
		got := DefaultLevels.ConfigFor(tc.level)
		if got != tc.expected {
			t.Errorf("ConfigFor(%d) = %+v, expected %+v", tc.level, got, tc.expected)
		}
	}
}

func TestConfigForCustomTable(t *testing.T) {
	table := Levels{{Containers: 6, Colors: 6}}

	if got := table.ConfigFor(3); got != (LevelConfig{Containers: 6, Colors: 6}) {
		t.Errorf("single-entry table should clamp, got %+v", got)
	}

	var empty Levels
	if got := empty.ConfigFor(1); got != DefaultLevels[0] {
		t.Errorf("empty table should fall back to defaults, got %+v", got)
	}
}
