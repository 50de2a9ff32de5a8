package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
			if r.ContainsPoint(Pt(tc.x, tc.y)) != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) disagrees with Contains", tc.x, tc.y)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", c.X, c.Y)
	}

	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
	if NewRect(0, 0, 0, 4).Area() != 0 {
		t.Error("Area() of an empty rect should be 0")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(12, 7)

	if got := p.Add(Pt(1, 0)); got != Pt(13, 7) {
		t.Errorf("Add() = %v, expected (13, 7)", got)
	}
	if got := p.Sub(Pt(0, 1)); got != Pt(12, 6) {
		t.Errorf("Sub() = %v, expected (12, 6)", got)
	}
	if got := p.Manhattan(Pt(10, 10)); got != 5 {
		t.Errorf("Manhattan() = %d, expected 5", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
