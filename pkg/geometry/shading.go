package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/term3d/pkg/math"
)

// minUVArea is the smallest |ΔU1·ΔV2 − ΔU2·ΔV1| for which a triangle
// contributes to tangent accumulation.
const minUVArea = 1e-12

// minTangentLengthSq is the smallest squared length of an orthogonalized
// tangent kept as is; shorter ones are replaced by a perpendicular of the
// normal.
const minTangentLengthSq = 1e-12

// CalculateNormals replaces every vertex normal with the normalized sum of
// the face normals of the triangles that use it. Face normals are the raw
// edge cross products, so larger triangles weigh more. Triangles with an
// out-of-range index are skipped. Vertices touched only by degenerate
// triangles end up with a zero normal.
func (m *Mesh) CalculateNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3Zero
	}

	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2, ok := m.triangle(t)
		if !ok {
			continue
		}
		p0 := m.Vertices[i0].Position
		edge1 := m.Vertices[i1].Position.Sub(p0)
		edge2 := m.Vertices[i2].Position.Sub(p0)
		n := edge1.Cross(edge2)

		m.Vertices[i0].Normal = m.Vertices[i0].Normal.Add(n)
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(n)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(n)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal.NormalizeInPlace()
	}
}

// CalculateTangents derives per-vertex tangent and bitangent from texture
// coordinates. Each triangle solves the UV-to-edge system; triangles whose
// UV determinant is (near) zero or which reference missing vertices are
// skipped. Afterwards the tangent is Gram-Schmidt orthogonalized against
// the normal and the bitangent is rebuilt as normal × tangent. A vertex
// that received no usable tangent gets an arbitrary one perpendicular to
// its normal, so the basis is orthonormal whenever the normal is unit.
func (m *Mesh) CalculateTangents() {
	for i := range m.Vertices {
		m.Vertices[i].Tangent = math.Vec3Zero
		m.Vertices[i].Bitangent = math.Vec3Zero
	}

	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2, ok := m.triangle(t)
		if !ok {
			continue
		}
		v0, v1, v2 := &m.Vertices[i0], &m.Vertices[i1], &m.Vertices[i2]

		edge1 := v1.Position.Sub(v0.Position)
		edge2 := v2.Position.Sub(v0.Position)
		duv1 := v1.TexCoord.Sub(v0.TexCoord)
		duv2 := v2.TexCoord.Sub(v0.TexCoord)

		det := duv1.X*duv2.Y - duv2.X*duv1.Y
		if math32.Abs(det) < minUVArea {
			continue
		}
		f := 1 / det

		tangent := edge1.Scale(duv2.Y).Sub(edge2.Scale(duv1.Y)).Scale(f).Normalize()
		bitangent := edge2.Scale(duv1.X).Sub(edge1.Scale(duv2.X)).Scale(f).Normalize()

		for _, v := range [3]*Vertex{v0, v1, v2} {
			v.Tangent = v.Tangent.Add(tangent)
			v.Bitangent = v.Bitangent.Add(bitangent)
		}
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		tangent := v.Tangent.Sub(v.Normal.Scale(v.Normal.Dot(v.Tangent)))
		if tangent.LengthSquared() < minTangentLengthSq {
			tangent = perpendicular(v.Normal)
		}
		v.Tangent = tangent.Normalize()
		v.Bitangent = v.Normal.Cross(v.Tangent).Normalize()
	}
}

// perpendicular returns a unit vector orthogonal to n, built by projecting
// the X axis (or Z when n is close to X) onto the plane of n.
func perpendicular(n math.Vec3) math.Vec3 {
	ref := math.Vec3UnitX
	if math32.Abs(n.Dot(ref)) > 0.9 {
		ref = math.Vec3UnitZ
	}
	return ref.Sub(n.Scale(n.Dot(ref))).Normalize()
}
