package core

import (
	"errors"
	"reflect"
	"testing"
)

const (
	colorA Color = "#FF5733"
	colorB Color = "#33FF57"
)

func newTestState(containers ...Container) State {
	return State{
		Containers: containers,
		Colors:     []Color{colorA, colorB},
		Level:      1,
	}
}

func TestSelectColorReplaces(t *testing.T) {
	s := newTestState(Container{})

	s = SelectColor(s, colorA)
	if s.Selected != colorA {
		t.Fatalf("Selected = %q, expected %q", s.Selected, colorA)
	}

	s = SelectColor(s, colorB)
	if s.Selected != colorB {
		t.Errorf("second selection should replace the first, got %q", s.Selected)
	}
}

func TestSelectColorDoesNotAlias(t *testing.T) {
	s := newTestState(Container{colorA}, Container{})

	next := SelectColor(s, colorB)
	next.Containers[0][0] = colorB
	next.Colors[0] = colorB

	if s.Containers[0][0] != colorA || s.Colors[0] != colorA {
		t.Errorf("SelectColor shares memory with its input: %+v", s)
	}
	if s.HasSelection() {
		t.Error("input state should stay unselected")
	}
}

func TestApplyMoveSuccess(t *testing.T) {
	before := SelectColor(newTestState(Container{colorA}, Container{}), colorB)

	after, outcome := ApplyMove(before, 0)

	if !outcome.Applied || outcome.Err != nil {
		t.Fatalf("outcome = %+v, expected applied", outcome)
	}
	if after.Containers[0].Len() != 2 {
		t.Errorf("container length = %d, expected 2", after.Containers[0].Len())
	}
	if after.Containers[0].Top() != colorB {
		t.Errorf("top = %q, expected the poured color %q", after.Containers[0].Top(), colorB)
	}
	if after.Score != before.Score+PourPoints {
		t.Errorf("score = %d, expected %d", after.Score, before.Score+PourPoints)
	}
	if after.HasSelection() {
		t.Error("selection should be consumed by a successful pour")
	}

	// The input state is untouched.
	if before.Containers[0].Len() != 1 || before.Score != 0 || before.Selected != colorB {
		t.Errorf("ApplyMove mutated its input: %+v", before)
	}
}

func TestApplyMoveIgnoresTopColor(t *testing.T) {
	s := SelectColor(newTestState(Container{colorA, colorA}), colorB)

	after, outcome := ApplyMove(s, 0)
	if !outcome.Applied {
		t.Fatalf("pour onto a different top color was rejected: %v", outcome.Err)
	}
	if got := after.Containers[0]; got[2] != colorB {
		t.Errorf("container = %v, expected %q on top", got, colorB)
	}
}

func TestApplyMoveRejected(t *testing.T) {
	full := Container{colorA, colorA, colorB, colorB}

	tests := []struct {
		name  string
		state State
		index int
		err   error
	}{
		{
			name:  "no color selected",
			state: newTestState(Container{}),
			index: 0,
			err:   ErrNoColorSelected,
		},
		{
			name:  "negative index",
			state: SelectColor(newTestState(Container{}), colorA),
			index: -1,
			err:   ErrInvalidContainerIndex,
		},
		{
			name:  "index past end",
			state: SelectColor(newTestState(Container{}), colorA),
			index: 1,
			err:   ErrInvalidContainerIndex,
		},
		{
			name:  "full container",
			state: SelectColor(newTestState(full, Container{}), colorA),
			index: 0,
			err:   ErrContainerFull,
		},
		{
			name:  "over-full container",
			state: SelectColor(newTestState(Container{colorA, colorA, colorA, colorA, colorA}, Container{}), colorB),
			index: 0,
			err:   ErrContainerFull,
		},
		{
			name:  "no selection checked before index",
			state: newTestState(full),
			index: 5,
			err:   ErrNoColorSelected,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.state.Clone()

			after, outcome := ApplyMove(tc.state, tc.index)

			if outcome.Applied {
				t.Fatal("move should not be applied")
			}
			if !errors.Is(outcome.Err, tc.err) {
				t.Errorf("Err = %v, expected %v", outcome.Err, tc.err)
			}
			if !reflect.DeepEqual(after, before) {
				t.Errorf("state changed:\n got %+v\nwant %+v", after, before)
			}
		})
	}
}

func TestApplyMoveDetectsWin(t *testing.T) {
	s := newTestState(
		Container{colorA, colorA, colorA},
		Container{colorB, colorB, colorB, colorB},
		Container{},
	)
	s = SelectColor(s, colorA)

	after, outcome := ApplyMove(s, 0)
	if !outcome.Won {
		t.Errorf("completing the last bottle should win, state:\n%s", after.Snapshot())
	}

	s = SelectColor(after, colorB)
	_, outcome = ApplyMove(s, 2)
	if outcome.Won {
		t.Error("a partly filled bottle should block the win")
	}
}

func TestIsWin(t *testing.T) {
	tests := []struct {
		name       string
		containers []Container
		expected   bool
	}{
		{
			name:       "sorted with empty spare",
			containers: []Container{{"A", "A", "A", "A"}, {}, {"B", "B", "B", "B"}},
			expected:   true,
		},
		{
			name:       "mixed bottle",
			containers: []Container{{"A", "A", "A", "B"}},
			expected:   false,
		},
		{
			name:       "uniform but not full",
			containers: []Container{{"A", "A", "A", "A"}, {"B", "B", "B"}},
			expected:   false,
		},
		{
			name:       "all empty",
			containers: []Container{{}, {}},
			expected:   true,
		},
		{
			name:       "no containers",
			containers: nil,
			expected:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := State{Containers: tc.containers}
			if got := IsWin(s); got != tc.expected {
				t.Errorf("IsWin() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := newTestState(Container{colorA}, Container{})
	c := s.Clone()

	c.Containers[0][0] = colorB
	c.Containers[1] = append(c.Containers[1], colorA)
	c.Colors[0] = colorB

	if s.Containers[0][0] != colorA || s.Containers[1].Len() != 0 || s.Colors[0] != colorA {
		t.Errorf("Clone shares memory with the original: %+v", s)
	}
}

func TestContainerCloneKeepsOverfullLayers(t *testing.T) {
	tests := []struct {
		name string
		c    Container
	}{
		{"empty", Container{}},
		{"full", Container{colorA, colorA, colorB, colorB}},
		{"over-full", Container{colorA, colorA, colorA, colorA, colorA, colorB}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.c.Clone()
			if !reflect.DeepEqual(got, tc.c) {
				t.Errorf("Clone = %v, expected %v", got, tc.c)
			}
			if cap(got) < Capacity {
				t.Errorf("cap = %d, expected at least %d", cap(got), Capacity)
			}
		})
	}
}
