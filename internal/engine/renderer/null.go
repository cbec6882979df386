package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/engine/lighting"
	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

var _ Renderer = (*NullRenderer)(nil)

// NullRenderer implements Renderer without any output. It keeps the
// submitted matrices and state so callers can be inspected in tests and
// dry runs.
type NullRenderer struct {
	log *zap.Logger

	config     Config
	viewport   [4]int
	projection math.Mat4
	view       math.Mat4
	light      *lighting.Rig
	state      State
	inFrame    bool
	stats      Stats
}

// NewNull creates a NullRenderer. A nil logger discards output.
func NewNull(log *zap.Logger) *NullRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &NullRenderer{
		log:        log.Named("renderer"),
		projection: math.Identity(),
		view:       math.Identity(),
	}
}

// Init records the framebuffer size.
func (r *NullRenderer) Init(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	r.config = cfg
	r.viewport = [4]int{0, 0, cfg.Width, cfg.Height}
	r.log.Info("renderer initialized",
		zap.String("name", r.Name()),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)
	return nil
}

// Close logs the accumulated statistics.
func (r *NullRenderer) Close() {
	r.log.Info("closing renderer",
		zap.Int("frames", r.stats.Frames),
		zap.Int("draw_calls", r.stats.DrawCalls),
		zap.Int("triangles", r.stats.Triangles),
	)
}

// Resize updates the framebuffer size. Non-positive sizes are ignored.
func (r *NullRenderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		r.log.Warn("ignoring resize", zap.Int("width", width), zap.Int("height", height))
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

func (r *NullRenderer) BeginFrame() {
	r.inFrame = true
}

func (r *NullRenderer) EndFrame() {
	if r.inFrame {
		r.stats.Frames++
	}
	r.inFrame = false
}

func (r *NullRenderer) Clear(flags ClearFlags, _ Color) {
	if flags != 0 {
		r.stats.Clears++
	}
}

func (r *NullRenderer) Enable(state State)  { r.state |= state }
func (r *NullRenderer) Disable(state State) { r.state &^= state }

// Enabled reports whether every bit of state is enabled.
func (r *NullRenderer) Enabled(state State) bool { return r.state.Has(state) }

func (r *NullRenderer) SetViewport(x, y, width, height int) {
	r.viewport = [4]int{x, y, width, height}
}

func (r *NullRenderer) SetProjection(projection math.Mat4) { r.projection = projection }
func (r *NullRenderer) SetView(view math.Mat4)             { r.view = view }

func (r *NullRenderer) SetLight(rig *lighting.Rig) { r.light = rig }

// Light returns the last light rig set.
func (r *NullRenderer) Light() *lighting.Rig { return r.light }

// Projection returns the last projection matrix set.
func (r *NullRenderer) Projection() math.Mat4 { return r.projection }

// View returns the last view matrix set.
func (r *NullRenderer) View() math.Mat4 { return r.view }

// Viewport returns x, y, width and height of the viewport.
func (r *NullRenderer) Viewport() [4]int { return r.viewport }

// DrawMesh counts one draw call and the mesh's triangles. Nil or empty
// meshes and draws outside a frame are dropped.
func (r *NullRenderer) DrawMesh(mesh *geometry.Mesh, _ math.Mat4) {
	if !r.accept("mesh") || mesh == nil || mesh.VertexCount() == 0 {
		return
	}
	r.stats.DrawCalls++
	r.stats.Triangles += mesh.TriangleCount()
}

// DrawLines counts one draw call and len(points)/2 segments.
func (r *NullRenderer) DrawLines(points []math.Vec3, _ Color) {
	if !r.accept("lines") || len(points) < 2 {
		return
	}
	r.stats.DrawCalls++
	r.stats.Lines += len(points) / 2
}

func (r *NullRenderer) accept(kind string) bool {
	if !r.inFrame {
		r.log.Warn("draw outside frame dropped", zap.String("kind", kind))
		return false
	}
	return true
}

func (r *NullRenderer) Name() string { return "NullRenderer" }

func (r *NullRenderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

func (r *NullRenderer) Stats() Stats { return r.stats }

func (r *NullRenderer) ResetStats() { r.stats = Stats{} }
