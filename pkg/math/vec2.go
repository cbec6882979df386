// Package math provides float32 vector, matrix and scalar types for 3D geometry.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Named Vec2 values.
var (
	Vec2Zero  = Vec2{0, 0}
	Vec2One   = Vec2{1, 1}
	Vec2UnitX = Vec2{1, 0}
	Vec2UnitY = Vec2{0, 1}
)

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / scalar. Dividing by zero yields Inf or NaN components.
func (v Vec2) Div(s float32) Vec2 {
	inv := 1 / s
	return Vec2{v.X * inv, v.Y * inv}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared magnitude.
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Div(l)
}

// NormalizeInPlace normalizes v. A zero-length v is left unchanged.
func (v *Vec2) NormalizeInPlace() {
	if l := v.Length(); l > 0 {
		*v = v.Div(l)
	}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}
