package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/engine/lighting"
	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

var _ Renderer = (*TerminalRenderer)(nil)

// TerminalRenderer draws wireframes into a character-cell screen. Frames
// are composed in an off-screen cell buffer and flushed on EndFrame.
// With StateFaceCulling enabled, triangles facing away from the camera are
// skipped. With a light rig set, each triangle's edges are dimmed by the
// light reaching its face.
type TerminalRenderer struct {
	screen tcell.Screen
	log    *zap.Logger

	// MeshColor is the style color for mesh edges.
	MeshColor Color

	width, height int
	cells         []rune
	styles        []tcell.Style

	projection math.Mat4
	view       math.Mat4
	viewProj   math.Mat4
	light      *lighting.Rig

	state   State
	inFrame bool
	stats   Stats
}

// NewTerminal creates a renderer drawing into screen. The caller owns the
// screen's Init and Fini.
func NewTerminal(screen tcell.Screen, log *zap.Logger) *TerminalRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &TerminalRenderer{
		screen:     screen,
		log:        log.Named("renderer"),
		MeshColor:  White,
		projection: math.Identity(),
		view:       math.Identity(),
		viewProj:   math.Identity(),
	}
}

// Init sizes the cell buffer. A zero Width or Height takes the screen size.
func (r *TerminalRenderer) Init(cfg Config) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		w, h = r.screen.Size()
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	r.allocate(w, h)
	r.log.Info("renderer initialized",
		zap.String("name", r.Name()),
		zap.Int("width", w),
		zap.Int("height", h),
	)
	return nil
}

func (r *TerminalRenderer) allocate(w, h int) {
	r.width, r.height = w, h
	r.cells = make([]rune, w*h)
	r.styles = make([]tcell.Style, w*h)
	r.fill(' ', tcell.StyleDefault)
}

// Close logs the accumulated statistics.
func (r *TerminalRenderer) Close() {
	r.log.Info("closing renderer",
		zap.Int("frames", r.stats.Frames),
		zap.Int("draw_calls", r.stats.DrawCalls),
	)
}

// Resize reallocates the cell buffer. Non-positive sizes are ignored.
func (r *TerminalRenderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		r.log.Warn("ignoring resize", zap.Int("width", width), zap.Int("height", height))
		return
	}
	r.allocate(width, height)
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

func (r *TerminalRenderer) BeginFrame() {
	r.inFrame = true
}

// EndFrame copies the cell buffer to the screen and shows it.
func (r *TerminalRenderer) EndFrame() {
	if !r.inFrame {
		return
	}
	r.inFrame = false
	r.stats.Frames++

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			i := y*r.width + x
			r.screen.SetContent(x, y, r.cells[i], nil, r.styles[i])
		}
	}
	r.screen.Show()
}

// Clear blanks the cell buffer when ClearColor is set; the color becomes
// the background. Depth and stencil have no meaning for a wireframe.
func (r *TerminalRenderer) Clear(flags ClearFlags, color Color) {
	if !flags.Has(ClearColor) {
		return
	}
	r.stats.Clears++
	r.fill(' ', tcell.StyleDefault.Background(toTcell(color)))
}

func (r *TerminalRenderer) fill(ch rune, style tcell.Style) {
	for i := range r.cells {
		r.cells[i] = ch
		r.styles[i] = style
	}
}

func (r *TerminalRenderer) Enable(state State)  { r.state |= state }
func (r *TerminalRenderer) Disable(state State) { r.state &^= state }

// Enabled reports whether every bit of state is enabled.
func (r *TerminalRenderer) Enabled(state State) bool { return r.state.Has(state) }

// SetViewport is a no-op: the viewport is always the whole buffer.
func (r *TerminalRenderer) SetViewport(_, _, _, _ int) {}

func (r *TerminalRenderer) SetProjection(projection math.Mat4) {
	r.projection = projection
	r.viewProj = r.projection.Mul(r.view)
}

func (r *TerminalRenderer) SetLight(rig *lighting.Rig) { r.light = rig }

func (r *TerminalRenderer) SetView(view math.Mat4) {
	r.view = view
	r.viewProj = r.projection.Mul(r.view)
}

// DrawMesh draws every triangle edge of mesh transformed by model.
func (r *TerminalRenderer) DrawMesh(mesh *geometry.Mesh, model math.Mat4) {
	if !r.accept("mesh") || mesh == nil || mesh.VertexCount() == 0 {
		return
	}
	r.stats.DrawCalls++

	mvp := r.viewProj.Mul(model)
	clip := make([]math.Vec4, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		clip[i] = mvp.MulVec4(v.Position.ToVec4(1))
	}

	style := tcell.StyleDefault.Foreground(toTcell(r.MeshColor))
	cull := r.state.Has(StateFaceCulling)
	n := uint32(len(clip))

	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		i0, i1, i2 := mesh.Indices[t], mesh.Indices[t+1], mesh.Indices[t+2]
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		a, b, c := clip[i0], clip[i1], clip[i2]
		if cull && backFacing(a, b, c) {
			continue
		}
		r.stats.Triangles++

		edge := style
		if r.light != nil {
			k := r.faceLight(model, mesh.Vertices[i0].Position, mesh.Vertices[i1].Position, mesh.Vertices[i2].Position)
			edge = tcell.StyleDefault.Foreground(toTcell(r.MeshColor.Scale(k)))
		}
		r.line(a, b, edge)
		r.line(b, c, edge)
		r.line(c, a, edge)
	}
}

// faceLight returns the light intensity at the world-space centroid of a
// triangle. Degenerate triangles get the ambient term.
func (r *TerminalRenderer) faceLight(model math.Mat4, p0, p1, p2 math.Vec3) float32 {
	w0 := model.MulVec4(p0.ToVec4(1)).XYZ()
	w1 := model.MulVec4(p1.ToVec4(1)).XYZ()
	w2 := model.MulVec4(p2.ToVec4(1)).XYZ()

	normal := w1.Sub(w0).Cross(w2.Sub(w0))
	if normal.LengthSquared() == 0 {
		return r.light.Ambient
	}
	centroid := w0.Add(w1).Add(w2).Scale(1.0 / 3)
	return r.light.Intensity(centroid, normal.Normalize())
}

// DrawLines draws consecutive point pairs in world space.
func (r *TerminalRenderer) DrawLines(points []math.Vec3, color Color) {
	if !r.accept("lines") || len(points) < 2 {
		return
	}
	r.stats.DrawCalls++

	style := tcell.StyleDefault.Foreground(toTcell(color))
	for i := 0; i+1 < len(points); i += 2 {
		r.stats.Lines++
		r.line(
			r.viewProj.MulVec4(points[i].ToVec4(1)),
			r.viewProj.MulVec4(points[i+1].ToVec4(1)),
			style,
		)
	}
}

func (r *TerminalRenderer) accept(kind string) bool {
	if !r.inFrame {
		r.log.Warn("draw outside frame dropped", zap.String("kind", kind))
		return false
	}
	return true
}

// line clips a clip-space segment against the near plane and the x/y
// extents of the view volume, then rasterizes it.
func (r *TerminalRenderer) line(a, b math.Vec4, style tcell.Style) {
	// near plane: z + w >= 0
	da, db := a.Z+a.W, b.Z+b.W
	if da < 0 && db < 0 {
		return
	}
	if da < 0 {
		a = lerp4(a, b, da/(da-db))
	} else if db < 0 {
		b = lerp4(b, a, db/(db-da))
	}
	if a.W <= 0 || b.W <= 0 {
		return
	}

	x0, y0 := a.X/a.W, a.Y/a.W
	x1, y1 := b.X/b.W, b.Y/b.W
	x0, y0, x1, y1, ok := clipRect(x0, y0, x1, y1)
	if !ok {
		return
	}

	sx0, sy0 := r.toScreen(x0, y0)
	sx1, sy1 := r.toScreen(x1, y1)
	r.raster(sx0, sy0, sx1, sy1, style)
}

func (r *TerminalRenderer) toScreen(ndcX, ndcY float32) (int, int) {
	x := (ndcX + 1) * 0.5 * float32(r.width-1)
	y := (1 - ndcY) * 0.5 * float32(r.height-1)
	return int(math32.Floor(x + 0.5)), int(math32.Floor(y + 0.5))
}

// raster walks the segment with Bresenham's algorithm, choosing a glyph
// from its slope.
func (r *TerminalRenderer) raster(x0, y0, x1, y1 int, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	glyph := slopeGlyph(x1-x0, y1-y0)

	err := dx + dy
	for {
		r.plot(x0, y0, glyph, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *TerminalRenderer) plot(x, y int, glyph rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	i := y*r.width + x
	r.cells[i] = glyph
	r.styles[i] = style
}

// Cell returns the glyph at (x, y) of the current frame buffer.
func (r *TerminalRenderer) Cell(x, y int) rune {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0
	}
	return r.cells[y*r.width+x]
}

func (r *TerminalRenderer) Name() string { return "TerminalRenderer" }

func (r *TerminalRenderer) Size() (width, height int) { return r.width, r.height }

func (r *TerminalRenderer) Stats() Stats { return r.stats }

func (r *TerminalRenderer) ResetStats() { r.stats = Stats{} }

// backFacing reports whether the triangle winds clockwise on screen.
// Triangles crossing the eye plane are never culled.
func backFacing(a, b, c math.Vec4) bool {
	if a.W <= 0 || b.W <= 0 || c.W <= 0 {
		return false
	}
	ax, ay := a.X/a.W, a.Y/a.W
	bx, by := b.X/b.W, b.Y/b.W
	cx, cy := c.X/c.W, c.Y/c.W
	return (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0
}

// clipRect clips the segment to [-1, 1]² (Liang-Barsky).
func clipRect(x0, y0, x1, y1 float32) (float32, float32, float32, float32, bool) {
	t0, t1 := float32(0), float32(1)
	dx, dy := x1-x0, y1-y0

	edges := [4][2]float32{
		{-dx, x0 + 1},
		{dx, 1 - x0},
		{-dy, y0 + 1},
		{dy, 1 - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func slopeGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '+'
	case adx >= 2*ady:
		return '-'
	case ady >= 2*adx:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\' // screen y grows downward
	default:
		return '/'
	}
}

func lerp4(a, b math.Vec4, t float32) math.Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}

func toTcell(c Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(math.Clamp(c.R, 0, 1)*255),
		int32(math.Clamp(c.G, 0, 1)*255),
		int32(math.Clamp(c.B, 0, 1)*255),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
