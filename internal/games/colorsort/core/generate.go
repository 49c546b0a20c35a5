package core

import "errors"

// ErrInvalidContainerCount is returned for negative container requests.
var ErrInvalidContainerCount = errors.New("colorsort: invalid container count")

// Generate builds a fresh distribution for a level.
//
// colors unique colors are drawn from palette. The working multiset repeats
// the drawn colors in order until it holds containers*Capacity units, which
// equals "four copies truncated" whenever colors >= containers. When colors <
// containers some colors appear more than Capacity times, so the puzzle may
// be unsolvable; generation does not check solvability.
//
// Every bottle is dealt full. Filling exactly Capacity copies per color
// would instead leave bottles short: 4 containers with 3 colors would deal
// layers [4,4,4,0] with 4 of each color, where this deals [4,4,4,4] with
// color counts 6/5/5.
//
// The multiset is shuffled and dealt Capacity units per container, then one
// spare empty container is appended, two when containers > 3. The drawn
// colors are returned alongside the containers.
func Generate(rng Shuffler, palette Palette, containers, colors int) ([]Container, []Color, error) {
	if containers < 0 {
		return nil, nil, ErrInvalidContainerCount
	}

	drawn, err := palette.Draw(rng, colors)
	if err != nil {
		return nil, nil, err
	}

	units := make([]Color, containers*Capacity)
	for i := range units {
		units[i] = drawn[i%len(drawn)]
	}
	rng.Shuffle(len(units), func(i, j int) {
		units[i], units[j] = units[j], units[i]
	})

	spares := Spares(containers)
	result := make([]Container, 0, containers+spares)
	for i := range containers {
		bottle := make(Container, Capacity)
		copy(bottle, units[i*Capacity:(i+1)*Capacity])
		result = append(result, bottle)
	}
	for range spares {
		result = append(result, make(Container, 0, Capacity))
	}

	return result, drawn, nil
}

// Spares returns how many empty containers a level with the given number of
// filled containers receives.
func Spares(containers int) int {
	if containers > 3 {
		return 2
	}
	return 1
}
