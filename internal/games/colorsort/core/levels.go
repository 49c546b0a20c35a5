package core

// LevelConfig holds generation parameters for one level.
type LevelConfig struct {
	Containers int // Filled containers before the spare empties are added
	Colors     int // Distinct colors drawn from the palette
}

// Levels is a 1-indexed level table.
type Levels []LevelConfig

// DefaultLevels is the built-in progression.
var DefaultLevels = Levels{
	{Containers: 2, Colors: 2},
	{Containers: 3, Colors: 3},
	{Containers: 4, Colors: 3},
	{Containers: 4, Colors: 4},
	{Containers: 5, Colors: 4},
}

// ConfigFor returns the entry for a 1-indexed level.
// Levels past the end of the table reuse the last entry; levels below 1 use
// the first one. An empty table falls back to DefaultLevels.
func (l Levels) ConfigFor(level int) LevelConfig {
	if len(l) == 0 {
		l = DefaultLevels
	}
	switch {
	case level < 1:
		return l[0]
	case level > len(l):
		return l[len(l)-1]
	default:
		return l[level-1]
	}
}
