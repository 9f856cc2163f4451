package logic

import dmath "github.com/yohamta/donburi/features/math"

// Axis selects which component of a vector a movement pattern governs.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns the YAML name of the axis.
func (a Axis) String() string {
	if a == AxisY {
		return "vertical"
	}
	return "horizontal"
}

// MovementPattern describes a stationary enemy sliding back and forth along one
// axis. Min and Max bound a closed interval on that axis.
type MovementPattern struct {
	Axis     Axis
	Min, Max float64
}

// HorizontalOscillation returns a pattern that reflects on the x axis.
func HorizontalOscillation(min, max float64) MovementPattern {
	return MovementPattern{Axis: AxisX, Min: min, Max: max}
}

// VerticalOscillation returns a pattern that reflects on the y axis.
func VerticalOscillation(min, max float64) MovementPattern {
	return MovementPattern{Axis: AxisY, Min: min, Max: max}
}

// Contains reports whether pos lies within the pattern's bounds on its axis.
func (p MovementPattern) Contains(pos dmath.Vec2) bool {
	v := p.component(pos)
	return v >= p.Min && v <= p.Max
}

func (p MovementPattern) component(v dmath.Vec2) float64 {
	if p.Axis == AxisY {
		return v.Y
	}
	return v.X
}

// Oscillate flips the sign of vel on the pattern's axis when pos has left the
// bounds, and reports whether it did. Position is never touched.
//
// Every call with an out-of-bounds position flips again, so callers run it
// exactly once per entity per tick.
func Oscillate(pos dmath.Vec2, vel *dmath.Vec2, p MovementPattern) bool {
	if p.Contains(pos) {
		return false
	}
	if p.Axis == AxisY {
		vel.Y = -vel.Y
	} else {
		vel.X = -vel.X
	}
	return true
}
