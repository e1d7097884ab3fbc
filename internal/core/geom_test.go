package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if !r.Contains(10, 10) || r.Contains(30, 25) || r.Contains(5, 15) {
		t.Error("Contains uses a half-open box")
	}
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestRectFIntersects(t *testing.T) {
	ship := RectAround(Vec{X: 20, Y: 20}, 5, 2)

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"enemy on ship", RectAround(Vec{X: 21.5, Y: 19.4}, 3, 1), true},
		{"enemy above", RectAround(Vec{X: 20, Y: 17}, 3, 1), false},
		{"grazing corner", RectAround(Vec{X: 23.9, Y: 21.4}, 3, 1), true},
		{"touching right edge", RectF{X: 22.5, Y: 19, W: 1, H: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ship.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{X: 1.5, Y: -2}.Add(Vec{X: 1, Y: 0.5}.Scale(2))
	if v.X != 3.5 || v.Y != -1 {
		t.Errorf("Add/Scale = %+v", v)
	}
	if x, y := v.Cell(); x != 3 || y != -1 {
		t.Errorf("Cell() = (%d, %d), expected (3, -1)", x, y)
	}
	r := RectAround(Vec{X: 10, Y: 10}, 4, 2)
	if r.X != 8 || r.Y != 9 || r.W != 4 || r.H != 2 {
		t.Errorf("RectAround = %+v", r)
	}
}

func TestClampHelpers(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{15.5, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max")
	}
}
