// Package renderer defines the drawing surface consumed by the scene and a
// headless implementation of it.
package renderer

import (
	"errors"

	"github.com/Faultbox/term3d/internal/engine/lighting"
	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

// ErrInvalidSize is returned when a renderer is initialized with a
// non-positive framebuffer size.
var ErrInvalidSize = errors.New("renderer: width and height must be positive")

// Renderer draws meshes and debug lines with the current view and
// projection. Draw calls are only valid between BeginFrame and EndFrame.
type Renderer interface {
	Init(cfg Config) error
	Close()
	Resize(width, height int)

	BeginFrame()
	EndFrame()
	Clear(flags ClearFlags, color Color)

	Enable(state State)
	Disable(state State)

	SetViewport(x, y, width, height int)
	SetProjection(projection math.Mat4)
	SetView(view math.Mat4)
	// SetLight shades subsequent meshes with rig. Nil draws them unlit.
	SetLight(rig *lighting.Rig)

	// DrawMesh draws mesh with the given model matrix.
	DrawMesh(mesh *geometry.Mesh, model math.Mat4)
	// DrawLines draws a line list: consecutive pairs of points.
	DrawLines(points []math.Vec3, color Color)

	Name() string
	Size() (width, height int)
	Stats() Stats
	ResetStats()
}
