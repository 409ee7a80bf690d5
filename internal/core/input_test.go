package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionUp, ActionHint)
	if !f.Has(ActionUp) || !f.Has(ActionHint) {
		t.Error("NewInputFrame should set the given actions")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) = true, expected false")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Empty() after Clear = false, expected true")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) || !zero.Empty() {
		t.Error("zero InputFrame should be empty")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameQueuesMovesInOrder(t *testing.T) {
	var f InputFrame
	for _, a := range []Action{ActionRight, ActionHint, ActionDown, ActionRight} {
		f.Set(a)
	}
	expected := []Action{ActionRight, ActionDown, ActionRight}
	if len(f.Moves) != len(expected) {
		t.Fatalf("Moves = %v, expected %v", f.Moves, expected)
	}
	for i, a := range expected {
		if f.Moves[i] != a {
			t.Errorf("Moves[%d] = %v, expected %v", i, f.Moves[i], a)
		}
	}

	f.Delta = 50 * time.Millisecond
	f.Clear()
	if len(f.Moves) != 0 || f.Delta != 0 {
		t.Errorf("after Clear Moves = %v, Delta = %v, expected empty", f.Moves, f.Delta)
	}
}

func TestActionString(t *testing.T) {
	if ActionDifficulty2.String() != "Difficulty2" {
		t.Errorf("String() = %q, expected Difficulty2", ActionDifficulty2.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(99).String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"bright_blue", ColorBrightBlue},
		{"Bright-Magenta", ColorBrightMagenta},
		{" grey ", ColorGray},
		{"default", ColorDefault},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("ParseColor(ultraviolet) expected error")
	}
	if ColorOrange.String() != "orange" {
		t.Errorf("ColorOrange.String() = %q", ColorOrange.String())
	}
}
