// Package math provides the vector, matrix and quaternion types used by the
// scene graph, camera and picking code.
package math

import "math"

// Vec2 is a 2D vector. Normalized device coordinates use it with both axes
// in [-1, 1] and Y pointing up.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// InUnitSquare reports whether both components lie in [-1, 1].
func (v Vec2) InUnitSquare() bool {
	return v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1
}
