// Package camera provides an orbit camera producing view and projection
// matrices.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	FOV    float32 // Vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        5,
		Pitch:           0.5,
		Yaw:             0,
		FOV:             math.Radians(60),
		Aspect:          16.0 / 9.0,
		Near:            0.1,
		Far:             100,
		MinDistance:     0.5,
		MaxDistance:     1000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3UnitY)
}

// ProjectionMatrix returns the perspective projection for this camera.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Unproject maps a normalized device coordinate back to world space.
func (c *OrbitCamera) Unproject(ndc math.Vec3) (math.Vec3, error) {
	inv, err := c.ViewProjection().Inverted()
	if err != nil {
		return math.Vec3{}, err
	}
	return inv.TransformPoint(ndc), nil
}

// HandleDrag updates rotation based on a pointer drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on the box and backs off until its
// bounding sphere fits both the vertical and horizontal field of view.
// Far is pushed out when the box would be clipped. An empty box leaves the
// camera unchanged.
func (c *OrbitCamera) FitToBounds(b geometry.BoundingBox) {
	if !b.IsValid() {
		return
	}
	c.Center = b.Center()

	radius := b.Radius()
	half := c.FOV * 0.5
	if c.Aspect < 1 {
		// horizontal fov is the narrower one
		half = math32.Atan(math32.Tan(half) * c.Aspect)
	}

	distance := c.MinDistance
	if radius > 0 {
		distance = max(radius/math32.Sin(half), c.MinDistance)
	}
	c.Distance = min(distance, c.MaxDistance)

	if reach := c.Distance + radius; reach > c.Far {
		c.Far = reach * 1.1
	}
}
