package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/term3d/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"zenith", 0, 90, math.Vec3{Y: 1}},
		{"south horizon", 0, 0, math.Vec3{Z: 1}},
		{"east horizon", 90, 0, math.Vec3{X: 1}},
		{"behind", 180, 0, math.Vec3{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			assert.True(t, tt.want.ApproxEqual(got, 1e-5), "want %v, got %v", tt.want, got)
			assert.InDelta(t, 1, got.Length(), 1e-5)
		})
	}
}

func TestDirectionalDiffuse(t *testing.T) {
	sun := NewSun(0, 90)

	assert.InDelta(t, 1, sun.Diffuse(math.Vec3{Y: 1}), 1e-5)
	assert.InDelta(t, 0, sun.Diffuse(math.Vec3{X: 1}), 1e-5)
	assert.Zero(t, sun.Diffuse(math.Vec3{Y: -1}), "back faces get no light")

	sun.Intensity = 0.5
	assert.InDelta(t, 0.5, sun.Diffuse(math.Vec3{Y: 1}), 1e-5)
}

func TestPointLightDiffuse(t *testing.T) {
	l := PointLight{Position: math.Vec3{Y: 2}, Range: 4, Intensity: 1}
	up := math.Vec3{Y: 1}

	// halfway to range: falloff (1 - 0.5)^2
	assert.InDelta(t, 0.25, l.Diffuse(math.Vec3{}, up), 1e-5)
	assert.Zero(t, l.Diffuse(math.Vec3{Y: -3}, up), "out of range")
	assert.Zero(t, l.Diffuse(math.Vec3{}, up.Negate()), "facing away")
	assert.Equal(t, float32(1), l.Diffuse(l.Position, up))
}

func TestRigIntensity(t *testing.T) {
	rig := NewRig(0.2, NewSun(0, 90))
	up := math.Vec3{Y: 1}
	down := up.Negate()

	assert.InDelta(t, 1, rig.Intensity(math.Vec3{}, up), 1e-5, "clamped to 1")
	assert.InDelta(t, 0.2, rig.Intensity(math.Vec3{}, down), 1e-5, "ambient only")

	assert.True(t, rig.AddLight(PointLight{Position: math.Vec3{Y: -2}, Range: 4, Intensity: 1}))
	assert.InDelta(t, 0.45, rig.Intensity(math.Vec3{}, down), 1e-5)

	rig.Clear()
	assert.Empty(t, rig.Points)
}

func TestRigAmbientClamped(t *testing.T) {
	assert.Equal(t, float32(1), NewRig(3, Directional{}).Ambient)
	assert.Equal(t, float32(0), NewRig(-1, Directional{}).Ambient)
}

func TestRigAddLight(t *testing.T) {
	rig := NewRig(0, Directional{})

	rig.AddLight(PointLight{Intensity: 1})
	assert.Equal(t, float32(DefaultPointRange), rig.Points[0].Range)

	for len(rig.Points) < MaxPointLights {
		assert.True(t, rig.AddLight(PointLight{Range: 1}))
	}
	assert.False(t, rig.AddLight(PointLight{Range: 1}))
	assert.Len(t, rig.Points, MaxPointLights)
}
