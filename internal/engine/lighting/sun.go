// Package lighting computes diffuse light intensity for wireframe shading.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/term3d/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a light
// direction vector. Longitude is rotation around the Y axis, latitude is
// elevation from the horizon. The result points towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	sinLon, cosLon := math32.Sincos(math.Radians(longitude))
	sinLat, cosLat := math32.Sincos(math.Radians(latitude))

	return math.Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}

// Directional is a light infinitely far away, such as the sun.
type Directional struct {
	Direction math.Vec3 // towards the light, unit length
	Intensity float32
}

// NewSun creates a full-intensity directional light from angles in
// degrees.
func NewSun(longitude, latitude float32) Directional {
	return Directional{Direction: SunDirection(longitude, latitude), Intensity: 1}
}

// Diffuse returns the Lambert term for a unit surface normal.
func (d Directional) Diffuse(normal math.Vec3) float32 {
	return max(normal.Dot(d.Direction), 0) * d.Intensity
}
