// Package viewer runs an interactive wireframe view of a scene in the
// terminal.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/engine/input"
	"github.com/Faultbox/term3d/internal/engine/picking"
	"github.com/Faultbox/term3d/internal/engine/renderer"
	"github.com/Faultbox/term3d/internal/engine/scene"
)

// Key bindings step sizes.
const (
	OrbitStep = 20  // drag units per arrow key press
	ZoomStep  = 1.0 // zoom units per +/- press
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewer owns the render loop over a tcell screen. The caller owns the
// screen's Init and Fini.
type Viewer struct {
	screen   tcell.Screen
	renderer *renderer.TerminalRenderer
	log      *zap.Logger
	input    *input.Input

	scene   *scene.Scene
	culling bool
	status  bool

	replace chan *scene.Scene
}

// New creates a viewer drawing s into screen.
func New(screen tcell.Screen, s *scene.Scene, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := renderer.NewTerminal(screen, log)
	if err := r.Init(renderer.Config{Title: "term3d"}); err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}

	v := &Viewer{
		screen:   screen,
		renderer: r,
		log:      log.Named("viewer"),
		input:    input.New(),
		scene:    s,
		culling:  true,
		status:   true,
		replace:  make(chan *scene.Scene, 1),
	}
	v.fitAspect()
	return v, nil
}

// Scene returns the scene being shown.
func (v *Viewer) Scene() *scene.Scene { return v.scene }

// Input returns the key bindings, which may be changed before Run.
func (v *Viewer) Input() *input.Input { return v.input }

// Renderer returns the terminal renderer.
func (v *Viewer) Renderer() *renderer.TerminalRenderer { return v.renderer }

// Replace swaps in a new scene from any goroutine. The camera and the
// display toggles of the current scene are kept. Only the
// most recent pending scene is kept.
func (v *Viewer) Replace(s *scene.Scene) {
	for {
		select {
		case v.replace <- s:
			return
		default:
			select {
			case <-v.replace:
			default:
			}
		}
	}
}

// Run draws the scene and handles input until the user quits or ctx is
// done.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case s := <-v.replace:
			v.swap(s)
			v.Draw()

		case ev := <-events:
			if !v.HandleEvent(ev) {
				v.log.Info("viewer closed by user")
				return nil
			}
			v.Draw()
		}
	}
}

// HandleEvent applies one input event. It returns false when the event
// asks to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	return v.Apply(v.input.Translate(ev))
}

// Apply performs a translated action. It returns false for ActionQuit.
func (v *Viewer) Apply(e input.Event) bool {
	cam := v.scene.Camera

	switch e.Action {
	case input.ActionQuit:
		return false
	case input.ActionOrbitLeft:
		cam.HandleDrag(OrbitStep, 0)
	case input.ActionOrbitRight:
		cam.HandleDrag(-OrbitStep, 0)
	case input.ActionOrbitUp:
		cam.HandleDrag(0, OrbitStep)
	case input.ActionOrbitDown:
		cam.HandleDrag(0, -OrbitStep)
	case input.ActionZoomIn:
		cam.HandleZoom(ZoomStep)
	case input.ActionZoomOut:
		cam.HandleZoom(-ZoomStep)
	case input.ActionPick:
		v.pick(e.MouseX, e.MouseY)
	case input.ActionToggleBounds:
		v.scene.ShowBounds = !v.scene.ShowBounds
	case input.ActionToggleCulling:
		v.culling = !v.culling
	case input.ActionToggleStatus:
		v.status = !v.status
	case input.ActionToggleLighting:
		v.scene.Lit = !v.scene.Lit
	case input.ActionToggleNormals:
		v.scene.ShowNormals = !v.scene.ShowNormals
	case input.ActionFit:
		cam.FitToBounds(v.scene.Bounds)
	case input.ActionClearSelection:
		v.scene.Selected = nil
	case input.ActionResize:
		v.renderer.Resize(e.Width, e.Height)
		v.fitAspect()
		v.screen.Sync()
	}
	if e.Action != input.ActionNone {
		v.log.Debug("input", zap.Stringer("action", e.Action))
	}
	return true
}

// pick selects the object under the cell at (x, y).
func (v *Viewer) pick(x, y int) {
	w, h := v.renderer.Size()
	ray, err := picking.ScreenToRay(float32(x)+0.5, float32(y)+0.5, float32(w), float32(h), v.scene.Camera.ViewProjection())
	if err != nil {
		v.log.Warn("pick failed", zap.Error(err))
		return
	}
	v.scene.Select(ray)
}

// Draw renders one frame and the status line.
func (v *Viewer) Draw() {
	if v.culling {
		v.renderer.Enable(renderer.StateFaceCulling)
	} else {
		v.renderer.Disable(renderer.StateFaceCulling)
	}
	v.scene.Render(v.renderer)

	if v.status {
		_, h := v.renderer.Size()
		v.drawText(0, h-1, v.StatusLine())
		v.screen.Show()
	}
}

// StatusLine summarizes the scene, selection and toggles.
func (v *Viewer) StatusLine() string {
	vertices, triangles := v.scene.Counts()
	selected := "-"
	if v.scene.Selected != nil {
		selected = v.scene.Selected.Name
	}
	return fmt.Sprintf(" objects %d  verts %d  tris %d  sel %s  bounds %s  cull %s  light %s  [arrows orbit, +/- zoom, click pick, q quit]",
		len(v.scene.Objects), vertices, triangles, selected,
		onOff(v.scene.ShowBounds), onOff(v.culling), onOff(v.scene.Lit))
}

func (v *Viewer) drawText(x, y int, text string) {
	w, _ := v.renderer.Size()
	style := tcell.StyleDefault.Reverse(true)
	for _, ch := range text {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (v *Viewer) swap(s *scene.Scene) {
	s.Camera = v.scene.Camera
	s.ShowBounds = v.scene.ShowBounds
	s.Lit = v.scene.Lit
	s.ShowNormals = v.scene.ShowNormals
	v.scene = s
	v.log.Info("scene replaced", zap.Int("objects", len(s.Objects)))
}

// fitAspect matches the projection to the cell grid, whose cells are
// taller than wide.
func (v *Viewer) fitAspect() {
	w, h := v.renderer.Size()
	if h > 0 {
		v.scene.Camera.Aspect = float32(w) / (float32(h) * CellAspect)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
