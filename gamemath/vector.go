package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// epsilon below which a vector is treated as having no direction.
const epsilon = 1e-9

// Vec is shorthand for building a donburi vector.
func Vec(x, y float64) math2.Vec2 {
	return math2.Vec2{X: x, Y: y}
}

func Add(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v math2.Vec2, s float64) math2.Vec2 {
	return math2.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func Length(v math2.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b math2.Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns v scaled to unit length. The second result is false when
// v is (nearly) zero, in which case the zero vector is returned.
func Normalize(v math2.Vec2) (math2.Vec2, bool) {
	l := Length(v)
	if l < epsilon {
		return math2.Vec2{}, false
	}
	return math2.Vec2{X: v.X / l, Y: v.Y / l}, true
}

// IsZero reports whether both components are exactly zero.
func IsZero(v math2.Vec2) bool {
	return v.X == 0 && v.Y == 0
}
