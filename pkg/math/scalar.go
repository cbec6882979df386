package math

import "github.com/chewxy/math32"

// Pi as float32.
const Pi = float32(3.14159265358979323846)

const (
	// DegToRad is the number of radians per degree.
	DegToRad = Pi / 180
	// RadToDeg is the number of degrees per radian.
	RadToDeg = 180 / Pi
	// Epsilon is the default tolerance for Approximately.
	Epsilon = float32(1e-6)
)

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * DegToRad
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * RadToDeg
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// SmoothStep maps x into [0, 1] over [edge0, edge1] with the Hermite curve 3x²-2x³.
func SmoothStep(edge0, edge1, x float32) float32 {
	x = Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return x * x * (3 - 2*x)
}

// Approximately reports whether |a-b| <= Epsilon.
func Approximately(a, b float32) bool {
	return ApproximatelyEps(a, b, Epsilon)
}

// ApproximatelyEps reports whether |a-b| <= eps.
func ApproximatelyEps(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func isFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
