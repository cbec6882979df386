package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/term3d/pkg/math"
)

// ErrInvalidMesh is wrapped by every error returned from Mesh.Validate.
var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is an indexed triangle list. Vertex order defines the index space;
// every three indices form one triangle. Bounds is derived from vertex
// positions and refreshed by UpdateBounds.
//
// A Mesh is not safe for concurrent mutation.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   BoundingBox
}

// NewMesh copies the given buffers into a new mesh and derives its bounds.
func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Vertices: append([]Vertex(nil), vertices...),
		Indices:  append([]uint32(nil), indices...),
	}
	m.UpdateBounds()
	return m
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	c := NewMesh(m.Vertices, m.Indices)
	c.Bounds = m.Bounds
	return c
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int { return len(m.Indices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// IsValid reports whether the mesh has at least one vertex and a whole
// number of triangles. A mesh without indices is a valid point cloud.
func (m *Mesh) IsValid() bool {
	return len(m.Vertices) > 0 && len(m.Indices)%3 == 0
}

// Validate is the strict form of IsValid: it also checks that every index
// references an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidMesh)
	}
	if n := len(m.Indices); n%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, n)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range [0, %d)",
				ErrInvalidMesh, idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Clear drops all vertices and indices and empties the bounds.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.Bounds.Reset()
}

// UpdateBounds recomputes Bounds from the current vertex positions.
func (m *Mesh) UpdateBounds() {
	m.Bounds.Reset()
	for i := range m.Vertices {
		m.Bounds.Expand(m.Vertices[i].Position)
	}
}

// Transform re-poses every vertex by the matrix. Positions are mapped as
// homogeneous points (w=1, no divide). Normals use the inverse transpose
// of the upper-left 3x3 block so they stay perpendicular under
// non-uniform scale; tangents and bitangents are surface directions and
// use the block itself. All three are renormalized. Bounds are refreshed.
func (m *Mesh) Transform(transform math.Mat4) {
	linear := transform.Mat3()
	normalMatrix := linear
	if inv, err := linear.Inverted(); err == nil {
		normalMatrix = inv.Transposed()
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = transform.MulVec4(v.Position.ToVec4(1)).XYZ()
		v.Normal = normalMatrix.MulVec3(v.Normal).Normalize()
		v.Tangent = linear.MulVec3(v.Tangent).Normalize()
		v.Bitangent = linear.MulVec3(v.Bitangent).Normalize()
	}

	m.UpdateBounds()
}

// triangle returns the vertex indices of triangle t and whether all three
// are in range.
func (m *Mesh) triangle(t int) (i0, i1, i2 uint32, ok bool) {
	i0, i1, i2 = m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
	n := uint32(len(m.Vertices))
	return i0, i1, i2, i0 < n && i1 < n && i2 < n
}
