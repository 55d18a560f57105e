package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPause)
	f.Set(ActionToggleWalls)
	if !f.Has(ActionPause) || !f.Has(ActionToggleWalls) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionToggleWalls) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionSouth) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionSouth)
	if !zero.Has(ActionSouth) {
		t.Error("Set should work on a zero frame")
	}
}

func TestInputFrameDirectionsOrdinalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionEast)
	f.Set(ActionPause)
	f.Set(ActionSouth)
	f.Set(ActionNorth)

	dirs := f.Directions()
	expected := []Direction{South, North, East}
	if len(dirs) != len(expected) {
		t.Fatalf("Directions() = %v, expected %v", dirs, expected)
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("Directions()[%d] = %v, expected %v", i, dirs[i], expected[i])
		}
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:        "None",
		ActionSouth:       "South",
		ActionToggleWalls: "ToggleWalls",
		ActionQuit:        "Quit",
		Action(99):        "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
