package core

import "math/rand"

// scriptedShuffler applies a fixed list of swaps on each call instead of
// shuffling. Calls past the end of the script leave the slice untouched.
type scriptedShuffler struct {
	script [][][2]int
	calls  int
}

func (s *scriptedShuffler) Shuffle(n int, swap func(i, j int)) {
	defer func() { s.calls++ }()
	if s.calls >= len(s.script) {
		return
	}
	for _, sw := range s.script[s.calls] {
		if sw[0] < n && sw[1] < n {
			swap(sw[0], sw[1])
		}
	}
}

// identity never reorders anything.
func identity() *scriptedShuffler {
	return &scriptedShuffler{}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func countColors(containers []Container) map[Color]int {
	counts := make(map[Color]int)
	for _, c := range containers {
		for _, layer := range c {
			counts[layer]++
		}
	}
	return counts
}
