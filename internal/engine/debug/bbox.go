// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

// BoundsWireframeVertexCount is the number of line endpoints of a box
// wireframe (12 edges × 2).
const BoundsWireframeVertexCount = 24

// DefaultBoundsPadding is the default padding for selection boxes.
const DefaultBoundsPadding = 0.02

// boxEdges indexes BoundingBox.Corners: bottom face, top face, verticals.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoundsWireframe returns the line list outlining b grown by padding on
// every side. An empty box yields nil.
func BoundsWireframe(b geometry.BoundingBox, padding float32) []math.Vec3 {
	if !b.IsValid() {
		return nil
	}
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	b.Min = b.Min.Sub(pad)
	b.Max = b.Max.Add(pad)

	corners := b.Corners()
	lines := make([]math.Vec3, 0, BoundsWireframeVertexCount)
	for _, e := range boxEdges {
		lines = append(lines, corners[e[0]], corners[e[1]])
	}
	return lines
}

// TangentFrameLines returns three line lists visualizing each vertex's
// normal, tangent and bitangent as segments of the given length.
func TangentFrameLines(m *geometry.Mesh, length float32) (normals, tangents, bitangents []math.Vec3) {
	n := 2 * m.VertexCount()
	normals = make([]math.Vec3, 0, n)
	tangents = make([]math.Vec3, 0, n)
	bitangents = make([]math.Vec3, 0, n)

	for _, v := range m.Vertices {
		p := v.Position
		normals = append(normals, p, p.Add(v.Normal.Scale(length)))
		tangents = append(tangents, p, p.Add(v.Tangent.Scale(length)))
		bitangents = append(bitangents, p, p.Add(v.Bitangent.Scale(length)))
	}
	return normals, tangents, bitangents
}
