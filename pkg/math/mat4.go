package math

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrSingularMatrix is returned when a matrix has no inverse.
var ErrSingularMatrix = errors.New("matrix is singular")

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// The zero value is the zero matrix.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns element (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// Set assigns element (row, col).
func (m *Mat4) Set(row, col int, v float32) {
	m[col*4+row] = v
}

// Data returns the 16 elements in column-major order for uniform upload.
func (m *Mat4) Data() []float32 {
	return m[:]
}

// Ptr returns a pointer to the first element.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Perspective returns a right-handed, OpenGL-style perspective projection.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Ortho returns an orthographic projection matrix mapping the box to the
// same clip convention as Perspective.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns a view matrix looking from eye towards target.
func LookAt(eye, target, up Vec3) Mat4 {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Add returns m + other.
func (m Mat4) Add(other Mat4) Mat4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns m - other.
func (m Mat4) Sub(other Mat4) Mat4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// MulScalar returns m * s.
func (m Mat4) MulScalar(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul multiplies this matrix by another (m * other). The result applies
// other first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec4 returns m * v, treating v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint transforms a point (w=1), applying the perspective divide
// when the resulting w is neither 0 nor 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(p.ToVec4(1))
	if r.W != 0 && r.W != 1 {
		return r.XYZ().Div(r.W)
	}
	return r.XYZ()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(d.ToVec4(0)).XYZ()
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// FromMat3 embeds a 3x3 block into an otherwise identity matrix.
func FromMat3(m3 Mat3) Mat4 {
	return Mat4{
		m3[0], m3[1], m3[2], 0,
		m3[3], m3[4], m3[5], 0,
		m3[6], m3[7], m3[8], 0,
		0, 0, 0, 1,
	}
}

// Transposed returns the transpose.
func (m Mat4) Transposed() Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.Set(row, col, m.At(col, row))
		}
	}
	return result
}

// minor returns the determinant of the 3x3 matrix left after removing
// the given row and column.
func (m Mat4) minor(skipRow, skipCol int) float32 {
	var sub Mat3
	c := 0
	for col := 0; col < 4; col++ {
		if col == skipCol {
			continue
		}
		r := 0
		for row := 0; row < 4; row++ {
			if row == skipRow {
				continue
			}
			sub.Set(r, c, m.At(row, col))
			r++
		}
		c++
	}
	return sub.Determinant()
}

func (m Mat4) cofactor(row, col int) float32 {
	if (row+col)%2 == 1 {
		return -m.minor(row, col)
	}
	return m.minor(row, col)
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Mat4) Determinant() float32 {
	var det float32
	for col := 0; col < 4; col++ {
		det += m.At(0, col) * m.cofactor(0, col)
	}
	return det
}

// Inverted returns the inverse computed from the adjugate. It works for any
// invertible matrix, projections included, and returns ErrSingularMatrix
// when the determinant is zero or not finite.
func (m Mat4) Inverted() (Mat4, error) {
	var cof [4][4]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cof[row][col] = m.cofactor(row, col)
		}
	}

	var det float32
	for col := 0; col < 4; col++ {
		det += m.At(0, col) * cof[0][col]
	}
	if det == 0 || !isFinite(det) {
		return Mat4{}, ErrSingularMatrix
	}

	invDet := 1 / det
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// adjugate is the transposed cofactor matrix
			result.Set(row, col, cof[col][row]*invDet)
		}
	}
	return result, nil
}

// IsAffine reports whether the bottom row is approximately [0 0 0 1].
func (m Mat4) IsAffine() bool {
	return Approximately(m[3], 0) &&
		Approximately(m[7], 0) &&
		Approximately(m[11], 0) &&
		Approximately(m[15], 1)
}

// FastInvertAffine inverts an affine matrix whose 3x3 block is orthogonal
// or uniformly scaled. The block is transposed and divided by the squared
// scale, and the translation is rotated into the new frame and negated.
// Other inputs silently produce a wrong result; build with the
// term3ddebug tag to panic on non-affine input.
func (m Mat4) FastInvertAffine() Mat4 {
	assertf(m.IsAffine(), "FastInvertAffine called on non-affine matrix %v", m)

	scaleSq := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	inv := 1 / scaleSq

	result := Identity()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result.Set(row, col, m.At(col, row)*inv)
		}
	}

	t := m.Translation()
	for row := 0; row < 3; row++ {
		result.Set(row, 3, -(result.At(row, 0)*t.X + result.At(row, 1)*t.Y + result.At(row, 2)*t.Z))
	}
	return result
}

// Equal reports whether every element is within Epsilon of other.
// Composed transforms accumulate rounding error, so use this rather than ==.
func (m Mat4) Equal(other Mat4) bool {
	return m.ApproxEqual(other, Epsilon)
}

// ApproxEqual reports whether every element is within eps of other.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if !ApproximatelyEps(m[i], other[i], eps) {
			return false
		}
	}
	return true
}
