package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	box := func(cx, cy, hx, hy float64) Box {
		return NewBox(Vec2{X: cx, Y: cy}, Vec2{X: hx, Y: hy})
	}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        box(0, 0, 10, 10),
			b:        box(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        box(0, 0, 10, 10),
			b:        box(25, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        box(0, 0, 10, 10),
			b:        box(0, 25, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        box(0, 0, 10, 10),
			b:        box(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        box(0, 0, 20, 20),
			b:        box(2, 2, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        box(0, 0, 10, 10),
			b:        box(19.9, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(Vec2{X: 10, Y: 20}, Vec2{X: 5, Y: 15})

	if b.Left() != 5 {
		t.Errorf("Left() = %v, expected 5", b.Left())
	}
	if b.Right() != 15 {
		t.Errorf("Right() = %v, expected 15", b.Right())
	}
	if b.Top() != 35 {
		t.Errorf("Top() = %v, expected 35", b.Top())
	}
	if b.Bottom() != 5 {
		t.Errorf("Bottom() = %v, expected 5", b.Bottom())
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: -2}.Add(Vec2{X: 3, Y: 4})
	if v.X != 4 || v.Y != 2 {
		t.Errorf("Add() = %+v, expected {4 2}", v)
	}

	v = Vec2{X: 2, Y: 3}.Scale(-2)
	if v.X != -4 || v.Y != -6 {
		t.Errorf("Scale() = %+v, expected {-4 -6}", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
