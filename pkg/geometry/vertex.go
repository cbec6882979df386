// Package geometry builds and processes indexed triangle meshes.
package geometry

import "github.com/Faultbox/term3d/pkg/math"

// Vertex is one entry of a mesh vertex buffer.
// Normal, Tangent and Bitangent are expected to form an orthonormal basis
// once CalculateTangents has run; nothing enforces that at construction.
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3
	TexCoord  math.Vec2
}

// NewVertex returns a vertex with the given position, normal and texture
// coordinate and an empty tangent frame.
func NewVertex(position, normal math.Vec3, texCoord math.Vec2) Vertex {
	return Vertex{Position: position, Normal: normal, TexCoord: texCoord}
}
