package logic

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestOscillate(t *testing.T) {
	tests := []struct {
		name     string
		pattern  MovementPattern
		pos      dmath.Vec2
		vel      dmath.Vec2
		flipped  bool
		expected dmath.Vec2
	}{
		{
			name:     "inside horizontal bounds",
			pattern:  HorizontalOscillation(0, 100),
			pos:      dmath.NewVec2(50, 10),
			vel:      dmath.NewVec2(2, 1),
			flipped:  false,
			expected: dmath.NewVec2(2, 1),
		},
		{
			name:     "on the boundary counts as inside",
			pattern:  HorizontalOscillation(0, 100),
			pos:      dmath.NewVec2(100, 10),
			vel:      dmath.NewVec2(2, 0),
			flipped:  false,
			expected: dmath.NewVec2(2, 0),
		},
		{
			name:     "past horizontal max",
			pattern:  HorizontalOscillation(0, 100),
			pos:      dmath.NewVec2(101, 10),
			vel:      dmath.NewVec2(2, 1),
			flipped:  true,
			expected: dmath.NewVec2(-2, 1),
		},
		{
			name:     "below horizontal min",
			pattern:  HorizontalOscillation(20, 100),
			pos:      dmath.NewVec2(19.5, 10),
			vel:      dmath.NewVec2(-3, 0),
			flipped:  true,
			expected: dmath.NewVec2(3, 0),
		},
		{
			name:     "vertical pattern ignores x",
			pattern:  VerticalOscillation(0, 50),
			pos:      dmath.NewVec2(-500, 25),
			vel:      dmath.NewVec2(1, 1),
			flipped:  false,
			expected: dmath.NewVec2(1, 1),
		},
		{
			name:     "past vertical max",
			pattern:  VerticalOscillation(0, 50),
			pos:      dmath.NewVec2(0, 60),
			vel:      dmath.NewVec2(1, 4),
			flipped:  true,
			expected: dmath.NewVec2(1, -4),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vel := tc.vel
			pos := tc.pos
			got := Oscillate(pos, &vel, tc.pattern)
			if got != tc.flipped {
				t.Errorf("Oscillate() = %v, expected %v", got, tc.flipped)
			}
			if vel != tc.expected {
				t.Errorf("velocity = %v, expected %v", vel, tc.expected)
			}
			if pos != tc.pos {
				t.Errorf("position changed to %v", pos)
			}
		})
	}
}

func TestOscillateFlipsAgainWhenStillOutside(t *testing.T) {
	p := HorizontalOscillation(0, 10)
	vel := dmath.NewVec2(1, 0)
	pos := dmath.NewVec2(11, 0)

	Oscillate(pos, &vel, p)
	Oscillate(pos, &vel, p)

	if vel != dmath.NewVec2(1, 0) {
		t.Errorf("two calls outside bounds should cancel out, got %v", vel)
	}
}

func TestAxisString(t *testing.T) {
	if AxisX.String() != "horizontal" || AxisY.String() != "vertical" {
		t.Errorf("unexpected axis names %q, %q", AxisX, AxisY)
	}
}
