package math

import "github.com/chewxy/math32"

// Vec4 is a 4-component vector, typically a homogeneous point or direction.
type Vec4 struct {
	X, Y, Z, W float32
}

// Named Vec4 values.
var (
	Vec4Zero = Vec4{0, 0, 0, 0}
	Vec4One  = Vec4{1, 1, 1, 1}
)

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / scalar.
func (v Vec4) Div(s float32) Vec4 {
	inv := 1 / s
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared magnitude.
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return v.Div(l)
}

// NormalizeInPlace normalizes v. A zero-length v is left unchanged.
func (v *Vec4) NormalizeInPlace() {
	if l := v.Length(); l > 0 {
		*v = v.Div(l)
	}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
