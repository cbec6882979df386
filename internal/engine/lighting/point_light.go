package lighting

import (
	"github.com/Faultbox/term3d/pkg/math"
)

// MaxPointLights is the maximum number of point lights in a Rig.
const MaxPointLights = 32

// DefaultPointRange replaces a non-positive point light range.
const DefaultPointRange = 10

// PointLight is a light with quadratic falloff that reaches zero at Range.
type PointLight struct {
	Position  math.Vec3
	Range     float32
	Intensity float32
}

// Diffuse returns the attenuated Lambert term at position p with unit
// normal n.
func (l PointLight) Diffuse(p, n math.Vec3) float32 {
	toLight := l.Position.Sub(p)
	dist := toLight.Length()
	if dist >= l.Range {
		return 0
	}
	if dist == 0 {
		return l.Intensity
	}
	falloff := 1 - dist/l.Range
	return max(n.Dot(toLight.Div(dist)), 0) * falloff * falloff * l.Intensity
}

// Rig combines ambient light, a sun and point lights.
type Rig struct {
	Ambient float32
	Sun     Directional
	Points  []PointLight
}

// NewRig creates a rig with the given ambient term and sun.
func NewRig(ambient float32, sun Directional) *Rig {
	return &Rig{
		Ambient: math.Clamp(ambient, 0, 1),
		Sun:     sun,
		Points:  make([]PointLight, 0, MaxPointLights),
	}
}

// AddLight adds a point light. A non-positive range takes
// DefaultPointRange. Returns false if the rig is full.
func (r *Rig) AddLight(light PointLight) bool {
	if len(r.Points) >= MaxPointLights {
		return false
	}
	if light.Range <= 0 {
		light.Range = DefaultPointRange
	}
	r.Points = append(r.Points, light)
	return true
}

// Clear removes all point lights.
func (r *Rig) Clear() {
	r.Points = r.Points[:0]
}

// Intensity returns the light reaching a surface at p with unit normal n,
// clamped to [0, 1].
func (r *Rig) Intensity(p, n math.Vec3) float32 {
	total := r.Ambient + r.Sun.Diffuse(n)
	for _, l := range r.Points {
		total += l.Diffuse(p, n)
	}
	return math.Clamp(total, 0, 1)
}
