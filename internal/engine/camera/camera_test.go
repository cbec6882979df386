package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

func TestPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.Pitch = 0
	c.Yaw = 0
	assertVec3(t, math.Vec3{X: 0, Y: 0, Z: 10}, c.Position())

	c.Yaw = math.Pi / 2
	assertVec3(t, math.Vec3{X: 10, Y: 0, Z: 0}, c.Position())

	c.Pitch = math.Pi / 2
	assertVec3(t, math.Vec3{X: 0, Y: 10, Z: 0}, c.Position())

	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}
	c.Pitch, c.Yaw = 0, 0
	assertVec3(t, math.Vec3{X: 1, Y: 2, Z: 13}, c.Position())
}

func TestViewMatrixMapsCenterToForward(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 2, Y: 0, Z: -1}
	c.Distance = 7
	c.Pitch = 0.3
	c.Yaw = 1.1

	view := c.ViewMatrix()
	assertVec3(t, math.Vec3Zero, view.TransformPoint(c.Position()))
	assertVec3(t, math.Vec3{X: 0, Y: 0, Z: -7}, view.TransformPoint(c.Center))
}

func TestViewProjectionCenterAtScreenMiddle(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw = 0.4, -0.8

	ndc := c.ViewProjection().TransformPoint(c.Center)
	assert.InDelta(t, 0, ndc.X, 1e-5)
	assert.InDelta(t, 0, ndc.Y, 1e-5)
	assert.Greater(t, ndc.Z, float32(-1))
	assert.Less(t, ndc.Z, float32(1))
}

func TestUnproject(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw = 0.2, 0.6

	ndc := c.ViewProjection().TransformPoint(c.Center)
	world, err := c.Unproject(ndc)
	require.NoError(t, err)
	if !world.ApproxEqual(c.Center, 1e-2) {
		t.Errorf("Unproject = %+v, want %+v", world, c.Center)
	}

	// near plane center lies between the eye and the target
	near, err := c.Unproject(math.Vec3{X: 0, Y: 0, Z: -1})
	require.NoError(t, err)
	assert.InDelta(t, c.Near, near.Distance(c.Position()), 1e-3)
}

func TestUnprojectDegenerate(t *testing.T) {
	c := NewOrbitCamera()
	c.Aspect = 0

	_, err := c.Unproject(math.Vec3Zero)
	assert.ErrorIs(t, err, math.ErrSingularMatrix)
}

func TestHandleDrag(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw = 0, 0

	c.HandleDrag(100, 0)
	assert.InDelta(t, -0.5, c.Yaw, 1e-6)

	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.Pitch)

	c.HandleDrag(0, -100000)
	assert.Equal(t, c.MinPitch, c.Pitch)
}

func TestHandleZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10

	c.HandleZoom(1)
	assert.InDelta(t, 9, c.Distance, 1e-5)

	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	assert.Equal(t, c.MinDistance, c.Distance)

	for i := 0; i < 200; i++ {
		c.HandleZoom(-5)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFitToBounds(t *testing.T) {
	b := geometry.BoxAround(math.Vec3{X: 5, Y: 1, Z: -2}, 2)

	c := NewOrbitCamera()
	c.FitToBounds(b)

	assertVec3(t, b.Center(), c.Center)

	// every corner projects inside the view volume
	vp := c.ViewProjection()
	for _, corner := range b.Corners() {
		ndc := vp.TransformPoint(corner)
		assert.LessOrEqual(t, math32.Abs(ndc.X), float32(1.0001), "corner %+v", corner)
		assert.LessOrEqual(t, math32.Abs(ndc.Y), float32(1.0001), "corner %+v", corner)
		assert.Greater(t, ndc.Z, float32(-1), "corner %+v", corner)
		assert.Less(t, ndc.Z, float32(1), "corner %+v", corner)
	}
}

func TestFitToBoundsNarrowAspect(t *testing.T) {
	b := geometry.UnitBox()

	wide := NewOrbitCamera()
	wide.Aspect = 2
	wide.FitToBounds(b)

	narrow := NewOrbitCamera()
	narrow.Aspect = 0.5
	narrow.FitToBounds(b)

	assert.Greater(t, narrow.Distance, wide.Distance)
}

func TestFitToBoundsExtendsFar(t *testing.T) {
	c := NewOrbitCamera()
	c.Far = 10
	b := geometry.BoxAround(math.Vec3Zero, 20)
	c.FitToBounds(b)

	assert.GreaterOrEqual(t, c.Far, c.Distance+b.Radius())
}

func TestFitToBoundsEmpty(t *testing.T) {
	c := NewOrbitCamera()
	before := *c
	c.FitToBounds(geometry.NewBoundingBox())
	assert.Equal(t, before, *c)
}

func TestFitToBoundsPoint(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(geometry.ZeroBox())
	assert.Equal(t, c.MinDistance, c.Distance)
}

func assertVec3(t *testing.T, want, got math.Vec3) {
	t.Helper()
	if !want.ApproxEqual(got, 1e-4) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
