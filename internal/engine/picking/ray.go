// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts pixel coordinates to a world-space ray through the
// near and far planes of viewProj. The pixel origin is the top-left corner.
// It fails with math.ErrSingularMatrix when viewProj cannot be inverted.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj math.Mat4) (Ray, error) {
	invViewProj, err := viewProj.Inverted()
	if err != nil {
		return Ray{}, err
	}

	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // flip Y

	near := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}, nil
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
// Returns the intersection point (X, Z) and whether it lies ahead of the
// origin.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if math32.Abs(r.Direction.Y) < 0.001 {
		return 0, 0, false // parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // behind origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectBox tests ray intersection with a bounding box using the slab
// method. Returns the distance to the entry point, or the exit point when
// the ray starts inside.
func (r Ray) IntersectBox(box geometry.BoundingBox) (t float32, hit bool) {
	if !box.IsValid() {
		return 0, false
	}

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
