package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if !Approximately(l, 1) {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got, want := a.Add(b), (Vec3{5, 7, 9}); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := b.Sub(a), (Vec3{3, 3, 3}); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec3{2, 4, 6}); got != want {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
	if got, want := a.Negate(), (Vec3{-1, -2, -3}); got != want {
		t.Errorf("Negate() = %v, want %v", got, want)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot() = %v, want 32", got)
	}
	if got, want := a.Cross(b), (Vec3{-3, 6, -3}); got != want {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Identities(t *testing.T) {
	pairs := [][2]Vec3{
		{{1, 2, 3}, {4, 5, 6}},
		{{-0.5, 0.25, 8}, {3, -7, 0.125}},
		{{0, 0, 0}, {1, 1, 1}},
		{{100, -200, 300}, {-1.5, 2.5, -3.5}},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		if got := a.Add(b).Sub(b); got != a {
			t.Errorf("%v + %v - %v = %v, want %v", a, b, b, got, a)
		}
		if a.Dot(b) != b.Dot(a) {
			t.Errorf("Dot not symmetric for %v, %v", a, b)
		}
		if a.Cross(b) != b.Cross(a).Negate() {
			t.Errorf("Cross not anti-commutative for %v, %v", a, b)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	vs := []Vec3{{3, 4, 0}, {1, 1, 1}, {-2, 0.5, 9}, {1e-3, 0, 0}}
	for _, v := range vs {
		if l := v.Normalize().Length(); !Approximately(l, 1) {
			t.Errorf("Normalize(%v).Length() = %v, want 1", v, l)
		}

		w := v
		w.NormalizeInPlace()
		if w != v.Normalize() {
			t.Errorf("NormalizeInPlace(%v) = %v, want %v", v, w, v.Normalize())
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != Vec3Zero {
		t.Errorf("Vec3 zero Normalize() = %v, want zero", got)
	}
	if got := (Vec2{}).Normalize(); got != Vec2Zero {
		t.Errorf("Vec2 zero Normalize() = %v, want zero", got)
	}
	if got := (Vec4{}).Normalize(); got != Vec4Zero {
		t.Errorf("Vec4 zero Normalize() = %v, want zero", got)
	}

	v := Vec3{}
	v.NormalizeInPlace()
	if v != Vec3Zero {
		t.Errorf("zero NormalizeInPlace() = %v, want zero", v)
	}
}

func TestVec3DivByZero(t *testing.T) {
	got := Vec3{1, -1, 0}.Div(0)
	if !math32.IsInf(got.X, 1) || !math32.IsInf(got.Y, -1) || !math32.IsNaN(got.Z) {
		t.Errorf("Div(0) = %v, want (+Inf, -Inf, NaN)", got)
	}
}

func TestVec4XYZ(t *testing.T) {
	v := Vec3{1, 2, 3}.ToVec4(4)
	if v != (Vec4{1, 2, 3, 4}) {
		t.Errorf("ToVec4() = %v", v)
	}
	if v.XYZ() != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ() = %v", v.XYZ())
	}
	if got := (Vec4{1, 2, 3, 4}).Dot(Vec4One); got != 10 {
		t.Errorf("Vec4.Dot() = %v, want 10", got)
	}
}
