package geometry

import (
	gomath "math"

	"github.com/Faultbox/term3d/pkg/math"
)

// BoundingBox is an axis-aligned box. A box with Min greater than Max on
// any axis is empty; that state is the neutral element for Expand.
//
// The zero value is not empty: it is a valid degenerate box at the origin,
// so expanding it always includes the origin. Start from NewBoundingBox,
// or call Mesh.UpdateBounds on a Mesh built as a literal.
type BoundingBox struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBoundingBox returns an empty box.
func NewBoundingBox() BoundingBox {
	var b BoundingBox
	b.Reset()
	return b
}

// BoxAround returns the cube of half-extent radius centered on center.
func BoxAround(center math.Vec3, radius float32) BoundingBox {
	r := math.Vec3{X: radius, Y: radius, Z: radius}
	return BoundingBox{Min: center.Sub(r), Max: center.Add(r)}
}

// BoxFromPoints returns the smallest box containing every point.
// No points yields an empty box.
func BoxFromPoints(points []math.Vec3) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Expand(p)
	}
	return b
}

// ZeroBox returns the degenerate box at the origin.
func ZeroBox() BoundingBox {
	return BoundingBox{}
}

// UnitBox returns the unit cube centered on the origin.
func UnitBox() BoundingBox {
	return BoxAround(math.Vec3Zero, 0.5)
}

// Reset empties the box.
func (b *BoundingBox) Reset() {
	const hi = gomath.MaxFloat32
	b.Min = math.Vec3{X: hi, Y: hi, Z: hi}
	b.Max = math.Vec3{X: -hi, Y: -hi, Z: -hi}
}

// IsValid reports whether the box is non-empty.
func (b BoundingBox) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Expand grows the box to include p. An empty box collapses onto p.
func (b *BoundingBox) Expand(p math.Vec3) {
	if !b.IsValid() {
		b.Min, b.Max = p, p
		return
	}
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandBox grows the box to include other. Empty boxes are ignored.
func (b *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsValid() {
		return
	}
	b.Expand(other.Min)
	b.Expand(other.Max)
}

// Center returns the midpoint, or zero for an empty box.
func (b BoundingBox) Center() math.Vec3 {
	if !b.IsValid() {
		return math.Vec3Zero
	}
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent on each axis, or zero for an empty box.
func (b BoundingBox) Size() math.Vec3 {
	if !b.IsValid() {
		return math.Vec3Zero
	}
	return b.Max.Sub(b.Min)
}

// Radius returns half the diagonal, or 0 for an empty box.
func (b BoundingBox) Radius() float32 {
	if !b.IsValid() {
		return 0
	}
	return b.Size().Length() * 0.5
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p math.Vec3) bool {
	if !b.IsValid() {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the boxes overlap. Touching faces count.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	if !b.IsValid() || !other.IsValid() {
		return false
	}
	return !(b.Max.X < other.Min.X || b.Min.X > other.Max.X ||
		b.Max.Y < other.Min.Y || b.Min.Y > other.Max.Y ||
		b.Max.Z < other.Min.Z || b.Min.Z > other.Max.Z)
}

// Corners returns the eight corners, bottom face first (y = Min.Y).
func (b BoundingBox) Corners() [8]math.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
}
