package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(4, 2, 10, 6)
	if r.Right() != 14 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 14/8", r.Right(), r.Bottom())
	}
}

func TestRectCenterRect(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)
	tests := []struct {
		name     string
		w, h     int
		expected Rect
	}{
		{"fits", 25, 13, NewRect(27, 5, 25, 13)},
		{"exact", 80, 24, NewRect(0, 0, 80, 24)},
		{"too wide", 100, 10, NewRect(0, 7, 100, 10)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.CenterRect(tc.w, tc.h); got != tc.expected {
				t.Errorf("CenterRect(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}

	if !screen.Fits(80, 24) || screen.Fits(81, 24) || screen.Fits(80, 25) {
		t.Error("Fits() boundary mismatch")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
}
