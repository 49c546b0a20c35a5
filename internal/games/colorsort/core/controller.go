package core

// Rules bundles the generation inputs a Controller uses.
type Rules struct {
	Palette Palette
	Levels  Levels
}

// DefaultRules returns the built-in palette and level table.
func DefaultRules() Rules {
	return Rules{
		Palette: DefaultPalette,
		Levels:  DefaultLevels,
	}
}

// Controller builds level states. It is the only place randomness enters
// the puzzle.
type Controller struct {
	rules Rules
	rng   Shuffler
}

// NewController creates a controller. Empty rule fields fall back to the
// defaults.
func NewController(rules Rules, rng Shuffler) *Controller {
	if len(rules.Palette) == 0 {
		rules.Palette = DefaultPalette
	}
	if len(rules.Levels) == 0 {
		rules.Levels = DefaultLevels
	}
	return &Controller{rules: rules, rng: rng}
}

// Rules returns the controller's rules.
func (c *Controller) Rules() Rules {
	return c.rules
}

// InitializeLevel generates a fresh state for level with a zero score.
func (c *Controller) InitializeLevel(level int) (State, error) {
	return c.build(level, 0)
}

// AdvanceLevel moves to the next level, keeping the score.
func (c *Controller) AdvanceLevel(s State) (State, error) {
	return c.build(s.Level+1, s.Score)
}

// RestartLevel regenerates the current level with a new layout, keeping the
// score.
func (c *Controller) RestartLevel(s State) (State, error) {
	return c.build(s.Level, s.Score)
}

func (c *Controller) build(level, score int) (State, error) {
	if level < 1 {
		level = 1
	}
	cfg := c.rules.Levels.ConfigFor(level)
	containers, colors, err := Generate(c.rng, c.rules.Palette, cfg.Containers, cfg.Colors)
	if err != nil {
		return State{}, err
	}
	return State{
		Containers: containers,
		Colors:     colors,
		Level:      level,
		Score:      score,
	}, nil
}
