package renderer

// ClearFlags selects the buffers cleared by Renderer.Clear.
type ClearFlags uint8

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
	ClearStencil

	ClearAll = ClearColor | ClearDepth | ClearStencil
)

// Has reports whether every bit of flag is set.
func (f ClearFlags) Has(flag ClearFlags) bool {
	return f&flag == flag
}

// State is a toggleable pipeline feature.
type State uint8

const (
	StateDepthTest State = 1 << iota
	StateBlending
	StateFaceCulling
	StateWireframe
)

// Has reports whether every bit of flag is set.
func (s State) Has(flag State) bool {
	return s&flag == flag
}

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

// Scale multiplies the RGB channels by k, keeping alpha.
func (c Color) Scale(k float32) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Stats counts the work submitted since the last ResetStats.
type Stats struct {
	Frames    int
	DrawCalls int
	Triangles int
	Lines     int
	Clears    int
}
