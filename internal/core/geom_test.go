package core

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name     string
		in       dmath.Vec2
		expected dmath.Vec2
	}{
		{"axis aligned", dmath.NewVec2(0, 10), dmath.NewVec2(0, 1)},
		{"negative x", dmath.NewVec2(-7, 0), dmath.NewVec2(-1, 0)},
		{"pythagorean", dmath.NewVec2(3, 4), dmath.NewVec2(0.6, 0.8)},
		{"zero falls back to straight down", dmath.NewVec2(0, 0), DefaultDirection},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Direction(tc.in)
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) {
				t.Errorf("Direction(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
			if !almostEqual(got.Magnitude(), 1) {
				t.Errorf("Direction(%v) has length %f, expected 1", tc.in, got.Magnitude())
			}
		})
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{Pos: dmath.NewVec2(0, 0), W: 10, H: 10},
			b:        Box{Pos: dmath.NewVec2(5, 5), W: 10, H: 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{Pos: dmath.NewVec2(0, 0), W: 10, H: 10},
			b:        Box{Pos: dmath.NewVec2(15, 0), W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        Box{Pos: dmath.NewVec2(0, 0), W: 10, H: 10},
			b:        Box{Pos: dmath.NewVec2(10, 0), W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{Pos: dmath.NewVec2(0, 0), W: 20, H: 20},
			b:        Box{Pos: dmath.NewVec2(5, 5), W: 2.5, H: 2.5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

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
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
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
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
