package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/term3d/pkg/math"
)

// Generator defaults.
const (
	DefaultCubeSize         = 1.0
	DefaultPlaneSize        = 1.0
	DefaultPlaneSegments    = 1
	DefaultSphereRadius     = 1.0
	DefaultSphereSegments   = 16
	DefaultCylinderRadius   = 0.5
	DefaultCylinderHeight   = 1.0
	DefaultCylinderSegments = 16

	// MinCurvedSegments is the lowest segment count for spheres and cylinders.
	MinCurvedSegments = 3
)

// cubeFace describes one face through its outward normal and the tangent
// (U) and bitangent (V) directions, chosen so tangent × bitangent = normal.
type cubeFace struct {
	normal, tangent, bitangent math.Vec3
}

var cubeFaces = [6]cubeFace{
	{math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}},
	{math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: -1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}},
	{math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: -1}},
	{math.Vec3{X: 0, Y: -1, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1}},
	{math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}},
	{math.Vec3{X: -1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{X: 0, Y: 1, Z: 0}},
}

// quad corners in (U, V) order: counter-clockwise seen from outside.
var quadUV = [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// CreateCube returns an axis-aligned cube of edge length size centered on
// the origin. Each face has its own four vertices so normals and tangents
// stay flat: 24 vertices, 36 indices.
func CreateCube(size float32) *Mesh {
	h := size * 0.5
	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	for _, f := range cubeFaces {
		base := uint32(len(m.Vertices))
		center := f.normal.Scale(h)
		for _, uv := range quadUV {
			du := f.tangent.Scale((uv.X*2 - 1) * h)
			dv := f.bitangent.Scale((uv.Y*2 - 1) * h)
			m.Vertices = append(m.Vertices, Vertex{
				Position:  center.Add(du).Add(dv),
				Normal:    f.normal,
				Tangent:   f.tangent,
				Bitangent: f.bitangent,
				TexCoord:  uv,
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}

	m.UpdateBounds()
	return m
}

// CreatePlane returns a size × size grid in the XZ plane facing +Y, split
// into segments × segments quads. segments below 1 is raised to 1.
// U runs along +X and V along -Z, matching the top face of CreateCube.
func CreatePlane(size float32, segments int) *Mesh {
	segments = max(segments, 1)
	step := size / float32(segments)
	half := size * 0.5
	stride := uint32(segments + 1)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (segments+1)*(segments+1)),
		Indices:  make([]uint32, 0, segments*segments*6),
	}

	for z := 0; z <= segments; z++ {
		for x := 0; x <= segments; x++ {
			m.Vertices = append(m.Vertices, Vertex{
				Position:  math.Vec3{X: -half + float32(x)*step, Y: 0, Z: -half + float32(z)*step},
				Normal:    math.Vec3UnitY,
				Tangent:   math.Vec3UnitX,
				Bitangent: math.Vec3UnitZ.Negate(),
				TexCoord:  math.Vec2{X: float32(x) / float32(segments), Y: 1 - float32(z)/float32(segments)},
			})
		}
	}

	for z := uint32(0); z < uint32(segments); z++ {
		for x := uint32(0); x < uint32(segments); x++ {
			topLeft := z*stride + x
			topRight := topLeft + 1
			bottomLeft := topLeft + stride
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	m.UpdateBounds()
	return m
}

// CreateSphere returns a UV sphere centered on the origin. theta runs from
// the +Y pole (V=0) to the -Y pole (V=1) and phi around the Y axis (U).
// It has (segments+1)² vertices, seams and poles duplicated. segments below
// MinCurvedSegments is raised to it.
func CreateSphere(radius float32, segments int) *Mesh {
	segments = max(segments, MinCurvedSegments)
	stride := uint32(segments + 1)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (segments+1)*(segments+1)),
		Indices:  make([]uint32, 0, segments*segments*6),
	}

	for y := 0; y <= segments; y++ {
		v := float32(y) / float32(segments)
		sinTheta, cosTheta := math32.Sincos(v * math.Pi)

		for x := 0; x <= segments; x++ {
			u := float32(x) / float32(segments)
			sinPhi, cosPhi := math32.Sincos(u * 2 * math.Pi)

			position := math.Vec3{
				X: radius * sinTheta * cosPhi,
				Y: radius * cosTheta,
				Z: radius * sinTheta * sinPhi,
			}
			normal := position.Normalize()

			var tangent math.Vec3
			if y == 0 || y == segments {
				// d/dphi vanishes at the poles
				tangent = perpendicular(normal)
			} else {
				tangent = math.Vec3{X: -sinPhi, Y: 0, Z: cosPhi}
			}

			m.Vertices = append(m.Vertices, Vertex{
				Position:  position,
				Normal:    normal,
				Tangent:   tangent,
				Bitangent: normal.Cross(tangent).Normalize(),
				TexCoord:  math.Vec2{X: u, Y: v},
			})
		}
	}

	for y := uint32(0); y < uint32(segments); y++ {
		for x := uint32(0); x < uint32(segments); x++ {
			first := y*stride + x
			second := first + 1
			third := first + stride
			fourth := third + 1

			m.Indices = append(m.Indices,
				first, second, third,
				second, fourth, third,
			)
		}
	}

	m.UpdateBounds()
	m.CalculateTangents()
	return m
}

// CreateCylinder returns a capped cylinder around the Y axis centered on
// the origin. The side wall is a strip of 2*(segments+1) vertices; each cap
// is a fan around its own center with a duplicated rim so the caps shade
// flat. The top fan is emitted (center, i+2, i+1) and the bottom fan
// (center, i+1, i+2): the rim runs clockwise seen from +Y, so the two caps
// need opposite orders to both face outward. segments below
// MinCurvedSegments is raised to it.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	segments = max(segments, MinCurvedSegments)
	half := height * 0.5
	rim := segments + 1

	m := &Mesh{
		Vertices: make([]Vertex, 0, 2*rim+2*(rim+1)),
		Indices:  make([]uint32, 0, segments*12),
	}

	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		s, c := math32.Sincos(u * 2 * math.Pi)
		normal := math.Vec3{X: c, Y: 0, Z: s}
		tangent := math.Vec3{X: -s, Y: 0, Z: c}

		top := Vertex{
			Position:  math.Vec3{X: c * radius, Y: half, Z: s * radius},
			Normal:    normal,
			Tangent:   tangent,
			Bitangent: normal.Cross(tangent),
			TexCoord:  math.Vec2{X: u, Y: 0},
		}
		bottom := top
		bottom.Position.Y = -half
		bottom.TexCoord.Y = 1
		m.Vertices = append(m.Vertices, top, bottom)
	}

	for i := uint32(0); i < uint32(segments); i++ {
		topLeft := i * 2
		bottomLeft := topLeft + 1
		topRight := topLeft + 2
		bottomRight := topRight + 1

		m.Indices = append(m.Indices,
			topLeft, topRight, bottomLeft,
			topRight, bottomRight, bottomLeft,
		)
	}

	m.appendCap(radius, half, segments, true)
	m.appendCap(radius, -half, segments, false)

	m.UpdateBounds()
	m.CalculateTangents()
	return m
}

// appendCap adds a fan at height y. Cap UVs map the unit disc onto [0,1]².
func (m *Mesh) appendCap(radius, y float32, segments int, top bool) {
	normal := math.Vec3UnitY
	if !top {
		normal = normal.Negate()
	}
	tangent := math.Vec3UnitX
	bitangent := normal.Cross(tangent)

	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position:  math.Vec3{X: 0, Y: y, Z: 0},
		Normal:    normal,
		Tangent:   tangent,
		Bitangent: bitangent,
		TexCoord:  math.Vec2{X: 0.5, Y: 0.5},
	})

	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(float32(i) / float32(segments) * 2 * math.Pi)
		m.Vertices = append(m.Vertices, Vertex{
			Position:  math.Vec3{X: c * radius, Y: y, Z: s * radius},
			Normal:    normal,
			Tangent:   tangent,
			Bitangent: bitangent,
			TexCoord:  math.Vec2{X: (c + 1) * 0.5, Y: (s + 1) * 0.5},
		})
	}

	for i := uint32(0); i < uint32(segments); i++ {
		if top {
			m.Indices = append(m.Indices, center, center+i+2, center+i+1)
		} else {
			m.Indices = append(m.Indices, center, center+i+1, center+i+2)
		}
	}
}
